package widgets

import "pom/application/ui"

// CheckBox is a two-state toggle element.
type CheckBox struct {
	ui.Element
}

// NewCheckBox creates an unbound checkbox declaration.
func NewCheckBox(by, value string) *CheckBox {
	return &CheckBox{Element: *ui.New(by, value)}
}

func (c *CheckBox) Clone() ui.Declaration {
	return &CheckBox{Element: c.Detach()}
}

// IsChecked reports whether the checkbox is currently checked.
func (c *CheckBox) IsChecked() (bool, error) {
	checked, err := c.GetAttribute("checked")
	if err != nil {
		return false, err
	}
	return checked == "true", nil
}

// Select checks the checkbox if it is not checked yet.
func (c *CheckBox) Select() error {
	checked, err := c.IsChecked()
	if err != nil {
		return err
	}
	if checked {
		return nil
	}
	return c.Click()
}

// Unselect unchecks the checkbox if it is checked.
func (c *CheckBox) Unselect() error {
	checked, err := c.IsChecked()
	if err != nil {
		return err
	}
	if !checked {
		return nil
	}
	return c.Click()
}
