package widgets

import "pom/application/ui"

// Link is an anchor element.
type Link struct {
	ui.Element
}

// NewLink creates an unbound link declaration.
func NewLink(by, value string) *Link {
	return &Link{Element: *ui.New(by, value)}
}

func (l *Link) Clone() ui.Declaration {
	return &Link{Element: l.Detach()}
}

// Href returns the link target.
func (l *Link) Href() (string, error) {
	return l.GetAttribute("href")
}
