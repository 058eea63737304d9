package tui

import "github.com/charmbracelet/bubbles/key"

func binding(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Relative  key.Binding
	Mode      key.Binding
	Harmonic  key.Binding
	Melodic   key.Binding
	Natural   key.Binding
	Shuffle   key.Binding
	Root      key.Binding
	Export    key.Binding
	ExportAll key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next fifth")),
	Prev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev fifth")),

	Relative:  binding("relative key", "r"),
	Mode:      binding("major/minor", "m"),
	Harmonic:  binding("harmonic minor", "h"),
	Melodic:   binding("melodic minor", "l"),
	Natural:   binding("natural minor", "n"),
	Shuffle:   binding("shuffle", "s"),
	Root:      binding("type a root", "/"),
	Export:    binding("export exercise", "e"),
	ExportAll: binding("export all keys", "x"),
	Help:      binding("more keys", "?"),
	Quit:      binding("quit", "q", "ctrl+c"),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Relative, k.Mode, k.Shuffle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Relative, k.Shuffle},
		{k.Mode, k.Harmonic, k.Melodic, k.Natural},
		{k.Root, k.Export, k.ExportAll},
		{k.Help, k.Quit},
	}
}
