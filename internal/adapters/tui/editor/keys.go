package editor

import "github.com/charmbracelet/bubbles/key"

type browseKeys struct {
	Prev key.Binding
	Next key.Binding
	Edit key.Binding
	Quit key.Binding
}

type editKeys struct {
	Save     key.Binding
	SaveNext key.Binding
	SavePrev key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

type keyMap struct {
	browse browseKeys
	edit   editKeys
}

func newKeyMap() keyMap {
	return keyMap{
		browse: browseKeys{
			Prev: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
			Next: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
			Edit: key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit")),
			Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
		},
		edit: editKeys{
			Save:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			SaveNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "save+next")),
			SavePrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "save+prev")),
			Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		},
	}
}

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Edit, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.SaveNext, k.SavePrev, k.Cancel, k.Quit}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
