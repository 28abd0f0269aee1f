// Package toolbar renders the Markdown toolbar and the status bar.
package toolbar

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/iw2rmb/ninja/keymap"
	"github.com/iw2rmb/ninja/markdown"
)

// Item is a toolbar entry: a Separator or an Action.
type Item interface {
	isItem()
}

// Separator divides groups of actions.
type Separator struct {
	Label string
}

// Action is a clickable tool. Construct is zero for tools that are not a
// Markdown construct, such as upload.
type Action struct {
	Name      string
	Label     string
	Help      string
	Construct markdown.Construct
}

func (Separator) isItem() {}
func (Action) isItem()    {}

// Command returns the keymap command the action runs.
func (a Action) Command() keymap.Command { return keymap.Action(a.Name) }

const (
	ActionFullscreen = "fullscreen"
	separatorName    = "|"
)

var builtinActions = map[string]Action{
	"bold":              {Name: "bold", Label: "B", Help: "Bold", Construct: markdown.Bold},
	"italic":            {Name: "italic", Label: "I", Help: "Italic", Construct: markdown.Italic},
	"quote":             {Name: "quote", Label: ">", Help: "Quote", Construct: markdown.Quote},
	"unordered-list":    {Name: "unordered-list", Label: "•", Help: "Bulleted list", Construct: markdown.UnorderedList},
	"ordered-list":      {Name: "ordered-list", Label: "1.", Help: "Numbered list", Construct: markdown.OrderedList},
	"link":              {Name: "link", Label: "[]", Help: "Link", Construct: markdown.Link},
	"image":             {Name: "image", Label: "![]", Help: "Image", Construct: markdown.Image},
	keymap.ActionUpload: {Name: keymap.ActionUpload, Label: "↑", Help: "Upload image"},
	ActionFullscreen:    {Name: ActionFullscreen, Label: "⤢", Help: "Fullscreen"},
}

// DefaultNames lists the default toolbar in config form.
func DefaultNames() []string {
	return []string{
		"bold", "italic", separatorName,
		"quote", "unordered-list", "ordered-list", separatorName,
		"link", "image", keymap.ActionUpload, separatorName,
		ActionFullscreen,
	}
}

// Default returns the default toolbar.
func Default() []Item {
	items, _ := Resolve(DefaultNames(), nil)
	return items
}

// Resolve turns config names into items. "|" is a separator; custom maps
// extra action names to their items and wins over the built-ins.
func Resolve(names []string, custom map[string]Action) ([]Item, error) {
	items := make([]Item, 0, len(names))
	var unknown []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == separatorName {
			items = append(items, Separator{Label: separatorName})
			continue
		}
		if a, ok := custom[name]; ok {
			if a.Name == "" {
				a.Name = name
			}
			if a.Label == "" {
				a.Label = name
			}
			items = append(items, a)
			continue
		}
		if a, ok := builtinActions[name]; ok {
			items = append(items, a)
			continue
		}
		unknown = append(unknown, name)
	}
	if len(unknown) > 0 {
		err := fmt.Errorf("toolbar: unknown items %q", unknown)
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid toolbar").
			WithTextCode("TOOLBAR_UNKNOWN_ITEM")
	}
	return items, nil
}

// Known reports whether name is a built-in toolbar item.
func Known(name string) bool {
	if name == separatorName {
		return true
	}
	_, ok := builtinActions[name]
	return ok
}

// Active reports whether a should be highlighted for state.
func Active(a Action, state markdown.State) bool {
	switch a.Construct {
	case 0:
		return false
	case markdown.Image:
		return state.Image
	}
	return state.Active(a.Construct)
}
