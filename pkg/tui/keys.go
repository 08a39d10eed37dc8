package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Submit     key.Binding
	Enter      key.Binding
	Tab        key.Binding
	ExportJSON key.Binding
	Report     key.Binding
	New        key.Binding
	Probe      key.Binding
	FormProbe  key.Binding
	Close      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "analyze"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "analyze"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "next field"),
	),
	ExportJSON: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "export json"),
	),
	Report: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "export report"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new analysis"),
	),
	Probe: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "test connection"),
	),
	FormProbe: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "test connection"),
	),
	Close: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}
