package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/modkeeper/modkeeper/internal/localization"
)

// keyMap holds the bindings of the root model. Help texts come from the
// active locale, so the map is rebuilt on every locale change.
type keyMap struct {
	NextPane     key.Binding
	PrevPane     key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	NextMatch    key.Binding
	PrevMatch    key.Binding
	ClearSearch  key.Binding
	ToggleEnable key.Binding
	Quit         key.Binding
}

func newKeyMap(texts localization.Texter) keyMap {
	return keyMap{
		NextPane:     binding(texts, localization.KeyHelpPanes, "tab"),
		PrevPane:     key.NewBinding(key.WithKeys("shift+tab")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		Select:       binding(texts, localization.KeyHelpSelect, "enter"),
		NextMatch:    binding(texts, localization.KeyHelpNavigate, "ctrl+n"),
		PrevMatch:    key.NewBinding(key.WithKeys("ctrl+p")),
		ClearSearch:  binding(texts, localization.KeyHelpClear, "ctrl+u"),
		ToggleEnable: key.NewBinding(key.WithKeys("ctrl+e")),
		Quit:         binding(texts, localization.KeyHelpQuit, "ctrl+c"),
	}
}

// binding creates a binding whose help is a localized "keys: description"
// text.
func binding(texts localization.Texter, helpKey string, keys ...string) key.Binding {
	k, desc := splitHelp(texts.Text(helpKey))
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(k, desc))
}

func splitHelp(text string) (string, string) {
	k, desc, ok := strings.Cut(text, ":")
	if !ok {
		return "", strings.TrimSpace(text)
	}
	return strings.TrimSpace(k), strings.TrimSpace(desc)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Select, k.NextMatch, k.ClearSearch, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.Select},
		{k.NextMatch, k.ClearSearch},
		{k.Quit},
	}
}
