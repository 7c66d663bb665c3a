// Package widgets provides the concrete widget types layered over the ui
// core. Each is a handful of calls through Element or Block with no logic
// of its own.
package widgets

import "pom/application/ui"

// Button is a clickable ui element.
type Button struct {
	ui.Element
}

// NewButton creates an unbound button declaration.
func NewButton(by, value string) *Button {
	return &Button{Element: *ui.New(by, value)}
}

func (b *Button) Clone() ui.Declaration {
	return &Button{Element: b.Detach()}
}
