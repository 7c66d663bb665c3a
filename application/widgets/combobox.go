package widgets

import (
	"fmt"

	"pom/application/ui"
	"pom/domain/entities"
)

// ComboBox is a select element.
type ComboBox struct {
	ui.Element
}

// NewComboBox creates an unbound combobox declaration.
func NewComboBox(by, value string) *ComboBox {
	return &ComboBox{Element: *ui.New(by, value)}
}

func (c *ComboBox) Clone() ui.Declaration {
	return &ComboBox{Element: c.Detach()}
}

// SetValue selects the option with the given value attribute.
func (c *ComboBox) SetValue(value string) error {
	if err := c.WaitForPresence(0); err != nil {
		return err
	}
	locator := entities.NewLocator(entities.ByCSS, fmt.Sprintf("option[value=%q]", value))
	option, err := c.WebElement().FindNode(locator)
	if err != nil {
		return err
	}
	return option.Click()
}

// Value returns the currently selected value.
func (c *ComboBox) Value() (string, error) {
	return c.GetAttribute("value")
}
