package luminary

import (
	"encoding/json"
	"errors"
	"time"
)

// MaxEdits is the number of persisted blueprint edits allowed. Once reached,
// editing stays refused: there is deliberately no in-app reset, and no
// automatic yearly reset either (known limitation, kept as is).
const MaxEdits = 3

const defaultBlueprintContent = "This is my manifesto. \n\nI am building a life of...\n\nMy north star is..."

var (
	// ErrLocked is returned for operations that need the access gate open.
	ErrLocked = errors.New("blueprint is locked")
	// ErrEditsExhausted is returned when entering edit mode with no edits left.
	ErrEditsExhausted = errors.New("maximum number of blueprint edits reached")
	// ErrNotEditing is returned for save/cancel outside of edit mode.
	ErrNotEditing = errors.New("blueprint is not being edited")
)

// BlueprintData is the persisted manifesto document.
type BlueprintData struct {
	Content    string `json:"content"`
	LastEdited int64  `json:"lastEdited"` // unix milliseconds
	EditCount  int    `json:"editCount"`  // monotonically increasing, never decremented
}

// Blueprint guards the manifesto behind two independent state machines: an
// access gate (locked/unlocked by an exact password match, a UI deterrent and
// explicitly not a security boundary) and an edit-count gate (viewing/editing,
// with entry refused once MaxEdits saves have been spent).
type Blueprint struct {
	data     BlueprintData
	password string

	unlocked bool
	editing  bool
	draft    string

	now func() time.Time
}

// NewBlueprint creates a locked blueprint with the placeholder manifesto.
func NewBlueprint(password string) *Blueprint {
	return &Blueprint{
		data:     BlueprintData{Content: defaultBlueprintContent},
		password: password,
		now:      time.Now,
	}
}

// Unlock opens the access gate on an exact password match. A failed attempt
// keeps the gate shut; there is no rate limiting or lockout.
func (b *Blueprint) Unlock(attempt string) bool {
	if attempt == b.password {
		b.unlocked = true
	}
	return b.unlocked
}

// Lock shuts the access gate again.
func (b *Blueprint) Lock() { b.unlocked = false }

// Unlocked reports whether the access gate is open.
func (b *Blueprint) Unlocked() bool { return b.unlocked }

// Data returns the persisted document. Reading requires the access gate open.
func (b *Blueprint) Data() (BlueprintData, error) {
	if !b.unlocked {
		return BlueprintData{}, ErrLocked
	}
	return b.data, nil
}

// RemainingEdits returns how many persisted edits are left.
func (b *Blueprint) RemainingEdits() int { return MaxEdits - b.data.EditCount }

// Editing reports whether an edit is in progress.
func (b *Blueprint) Editing() bool { return b.editing }

// StartEdit enters edit mode with a draft initialized to the persisted
// content. Entry is refused when locked or when all edits are spent.
func (b *Blueprint) StartEdit() error {
	if !b.unlocked {
		return ErrLocked
	}
	if b.data.EditCount >= MaxEdits {
		return ErrEditsExhausted
	}
	b.editing = true
	b.draft = b.data.Content
	return nil
}

// SetDraft replaces the in-memory draft. Nothing is persisted until Save.
func (b *Blueprint) SetDraft(content string) error {
	if !b.editing {
		return ErrNotEditing
	}
	b.draft = content
	return nil
}

// Cancel leaves edit mode, discarding the draft. The persisted content and
// the edit count are untouched.
func (b *Blueprint) Cancel() error {
	if !b.editing {
		return ErrNotEditing
	}
	b.editing = false
	b.draft = ""
	return nil
}

// Save commits the draft: the content is replaced, the edit count consumed,
// and the last-edited stamp refreshed. The caller persists the returned data.
func (b *Blueprint) Save() (BlueprintData, error) {
	if !b.editing {
		return BlueprintData{}, ErrNotEditing
	}
	b.data.Content = b.draft
	b.data.EditCount++
	b.data.LastEdited = b.now().UnixMilli()
	b.editing = false
	b.draft = ""
	return b.data, nil
}

func (b *Blueprint) MarshalJSON() ([]byte, error) { return json.Marshal(b.data) }

// UnmarshalJSON loads the persisted document, migrating the legacy shape
// (separate vision / core values / five-year fields) into a single content.
func (b *Blueprint) UnmarshalJSON(bytes []byte) error {
	var legacy struct {
		Vision       *string `json:"vision"`
		CoreValues   string  `json:"coreValues"`
		FiveYearGoal string  `json:"fiveYearGoal"`
		LastEdited   int64   `json:"lastEdited"`
		EditCount    int     `json:"editCount"`
	}
	if err := json.Unmarshal(bytes, &legacy); err != nil {
		return err
	}
	if legacy.Vision != nil {
		b.data = BlueprintData{
			Content:    "MY VISION\n" + *legacy.Vision + "\n\nCORE VALUES\n" + legacy.CoreValues + "\n\n5 YEAR HORIZON\n" + legacy.FiveYearGoal,
			LastEdited: legacy.LastEdited,
			EditCount:  legacy.EditCount,
		}
		return nil
	}
	return json.Unmarshal(bytes, &b.data)
}
