package renderer

import (
	"github.com/luminary-app/luminary"
)

// WishlistView splits the wishlist into its two halves: costed small joys
// and long-term north stars.
type WishlistView struct {
	SmallJoys  []WishView `json:"smallJoys"`
	NorthStars []WishView `json:"northStars"`
}

// WishView is one wishlist line.
type WishView struct {
	Mark  string `json:"mark"` // "x" when completed, " " otherwise
	Title string `json:"title"`
	Cost  string `json:"cost,omitempty"`
}

// NewWishlistView builds the wishlist report.
func NewWishlistView(d *luminary.Dashboard, currency string) *WishlistView {
	v := &WishlistView{}
	for _, item := range d.Wishlist.Items() {
		w := WishView{Mark: " ", Title: item.Title}
		if item.Completed {
			w.Mark = "x"
		}
		if item.Cost != nil {
			w.Cost = luminary.M(*item.Cost, currency).String()
		}
		if item.Kind == luminary.NorthStar {
			v.NorthStars = append(v.NorthStars, w)
		} else {
			v.SmallJoys = append(v.SmallJoys, w)
		}
	}
	return v
}

// RenderWishlist renders the WishlistView to a markdown string.
func RenderWishlist(v *WishlistView) string {
	return renderTemplate("wishlist", wishlistTemplate, nil, v)
}

const wishlistTemplate = `# Wishlist
{{ if .SmallJoys }}
## Small Joys
{{ range .SmallJoys }}
* [{{ .Mark }}] {{ .Title }}{{ if .Cost }} ({{ .Cost }}){{ end }}{{ end }}
{{ end }}{{ if .NorthStars }}
## North Stars
{{ range .NorthStars }}
* [{{ .Mark }}] {{ .Title }}{{ end }}
{{ end }}`
