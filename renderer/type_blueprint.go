package renderer

import (
	"time"

	"github.com/luminary-app/luminary"
)

// BlueprintView is the unlocked manifesto page.
type BlueprintView struct {
	Content        string `json:"content"`
	LastEdited     string `json:"lastEdited,omitempty"`
	RemainingEdits int    `json:"remainingEdits"`
}

// NewBlueprintView builds the view from already-unlocked blueprint data.
func NewBlueprintView(data luminary.BlueprintData) *BlueprintView {
	v := &BlueprintView{
		Content:        data.Content,
		RemainingEdits: luminary.MaxEdits - data.EditCount,
	}
	if data.LastEdited > 0 {
		v.LastEdited = time.UnixMilli(data.LastEdited).UTC().Format("2006-01-02 15:04")
	}
	return v
}

// RenderBlueprint renders the BlueprintView to a markdown string.
func RenderBlueprint(v *BlueprintView) string {
	return renderTemplate("blueprint", blueprintTemplate, nil, v)
}

const blueprintTemplate = `# Blueprint

{{ .Content }}

---
{{ if .LastEdited }}*Last edited {{ .LastEdited }}.* {{ end }}*{{ .RemainingEdits }} edit(s) remaining.*
`
