package widgets

import (
	"pom/application/ui"
	"pom/domain/entities"
)

// Form is a block wrapping a form element.
type Form struct {
	ui.Block
}

// NewForm creates an unbound form declaration hosting the registered
// fields.
func NewForm(by, value string, registry *ui.Registry) *Form {
	return &Form{Block: *ui.NewBlock(by, value, registry)}
}

func (f *Form) Clone() ui.Declaration {
	return &Form{Block: f.Block.Detach()}
}

// Submit clicks the form's submit control.
func (f *Form) Submit() error {
	node, err := f.FindElement(entities.NewLocator(entities.ByCSS, "[type=submit]"))
	if err != nil {
		return err
	}
	return node.Click()
}

// Cancel clicks the form's reset control.
func (f *Form) Cancel() error {
	node, err := f.FindElement(entities.NewLocator(entities.ByCSS, "[type=reset]"))
	if err != nil {
		return err
	}
	return node.Click()
}
