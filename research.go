package luminary

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/luminary-app/luminary/date"
)

// ResearchItem is one research note of the finance tracker. The creation date
// is immutable after creation.
type ResearchItem struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Preview string    `json:"preview"`
	Tags    []string  `json:"tags"`
	Date    date.Date `json:"date"`
}

// SplitTags turns a comma-separated user entry into an ordered list of
// trimmed, non-empty tags.
func SplitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Notebook is the ordered list of research notes.
type Notebook struct {
	notes []ResearchItem
}

// NewNotebook creates an empty notebook.
func NewNotebook() *Notebook { return &Notebook{} }

// Notes returns the research notes in creation order.
func (n *Notebook) Notes() []ResearchItem { return n.notes }

// Add appends a note dated on the given day. Blank title or preview is a
// no-op reported by ok=false.
func (n *Notebook) Add(on date.Date, title, preview, tags string) (ResearchItem, bool) {
	title = strings.TrimSpace(title)
	preview = strings.TrimSpace(preview)
	if title == "" || preview == "" {
		return ResearchItem{}, false
	}
	item := ResearchItem{
		ID:      uuid.NewString(),
		Title:   title,
		Preview: preview,
		Tags:    SplitTags(tags),
		Date:    on,
	}
	n.notes = append(n.notes, item)
	return item, true
}

// Update replaces title, preview and tags of the matching note. The creation
// date is kept.
func (n *Notebook) Update(id, title, preview, tags string) bool {
	title = strings.TrimSpace(title)
	preview = strings.TrimSpace(preview)
	if title == "" || preview == "" {
		return false
	}
	for i := range n.notes {
		if n.notes[i].ID == id {
			n.notes[i].Title = title
			n.notes[i].Preview = preview
			n.notes[i].Tags = SplitTags(tags)
			return true
		}
	}
	return false
}

// Delete removes the matching note.
func (n *Notebook) Delete(id string) bool {
	for i := range n.notes {
		if n.notes[i].ID == id {
			n.notes = append(n.notes[:i:i], n.notes[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Notebook) MarshalJSON() ([]byte, error) { return json.Marshal(n.notes) }

func (n *Notebook) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &n.notes) }
