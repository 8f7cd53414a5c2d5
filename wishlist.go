package luminary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WishKind separates affordable short-term experiences ("small joys") from
// long-term aspirations ("north stars").
type WishKind string

const (
	SmallJoy  WishKind = "small_joy"
	NorthStar WishKind = "long_term"
)

// ParseWishKind parses a string into a WishKind.
func ParseWishKind(s string) (WishKind, error) {
	switch strings.ToLower(s) {
	case "small_joy", "joy":
		return SmallJoy, nil
	case "long_term", "star":
		return NorthStar, nil
	default:
		return "", fmt.Errorf("unknown wishlist kind %q (want small_joy or long_term)", s)
	}
}

// WishlistItem is one wish. Cost is only meaningful for small joys.
type WishlistItem struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Kind      WishKind         `json:"type"`
	Completed bool             `json:"completed"`
	Cost      *decimal.Decimal `json:"cost,omitempty"`
}

// Wishlist is the ordered list of wishes.
type Wishlist struct {
	items []WishlistItem
}

// NewWishlist creates an empty wishlist.
func NewWishlist() *Wishlist { return &Wishlist{} }

// Items returns the wishes in creation order.
func (w *Wishlist) Items() []WishlistItem { return w.items }

// AddSmallJoy appends a small joy with its cost. A blank title is a no-op.
func (w *Wishlist) AddSmallJoy(title string, cost decimal.Decimal) (WishlistItem, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return WishlistItem{}, false
	}
	item := WishlistItem{ID: uuid.NewString(), Title: title, Kind: SmallJoy, Cost: &cost}
	w.items = append(w.items, item)
	return item, true
}

// AddNorthStar appends a long-term aspiration. A blank title is a no-op.
func (w *Wishlist) AddNorthStar(title string) (WishlistItem, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return WishlistItem{}, false
	}
	item := WishlistItem{ID: uuid.NewString(), Title: title, Kind: NorthStar}
	w.items = append(w.items, item)
	return item, true
}

// Rename replaces the title (and, for small joys, the cost) of the matching
// wish. An empty title is a no-op: the previous title is kept.
func (w *Wishlist) Rename(id, title string, cost *decimal.Decimal) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	for i := range w.items {
		if w.items[i].ID == id {
			w.items[i].Title = title
			if w.items[i].Kind == SmallJoy && cost != nil {
				w.items[i].Cost = cost
			}
			return true
		}
	}
	return false
}

// Toggle flips the completed flag of the matching wish.
func (w *Wishlist) Toggle(id string) bool {
	for i := range w.items {
		if w.items[i].ID == id {
			w.items[i].Completed = !w.items[i].Completed
			return true
		}
	}
	return false
}

// Delete removes the matching wish.
func (w *Wishlist) Delete(id string) bool {
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i:i], w.items[i+1:]...)
			return true
		}
	}
	return false
}

func (w *Wishlist) MarshalJSON() ([]byte, error) { return json.Marshal(w.items) }

func (w *Wishlist) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &w.items) }
