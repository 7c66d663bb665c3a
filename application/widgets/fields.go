package widgets

import (
	"strconv"

	"pom/application/ui"
)

// TextField is a text input element.
type TextField struct {
	ui.Element
}

// NewTextField creates an unbound text field declaration.
func NewTextField(by, value string) *TextField {
	return &TextField{Element: *ui.New(by, value)}
}

func (f *TextField) Clone() ui.Declaration {
	return &TextField{Element: f.Detach()}
}

// SetValue clears the field and types the given text.
func (f *TextField) SetValue(value string) error {
	if err := f.WaitForPresence(0); err != nil {
		return err
	}
	if err := f.WebElement().Clear(); err != nil {
		return err
	}
	return f.WebElement().SendKeys(value)
}

// Value returns the field's current input value.
func (f *TextField) Value() (string, error) {
	return f.GetAttribute("value")
}

// IntegerField is a text input holding an integer.
type IntegerField struct {
	TextField
}

// NewIntegerField creates an unbound integer field declaration.
func NewIntegerField(by, value string) *IntegerField {
	return &IntegerField{TextField: *NewTextField(by, value)}
}

func (f *IntegerField) Clone() ui.Declaration {
	return &IntegerField{TextField: TextField{Element: f.Detach()}}
}

// SetInt types the given integer into the field.
func (f *IntegerField) SetInt(value int) error {
	return f.SetValue(strconv.Itoa(value))
}

// Int returns the field's current value as an integer.
func (f *IntegerField) Int() (int, error) {
	value, err := f.Value()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

// FileField is a file input element.
type FileField struct {
	ui.Element
}

// NewFileField creates an unbound file field declaration.
func NewFileField(by, value string) *FileField {
	return &FileField{Element: *ui.New(by, value)}
}

func (f *FileField) Clone() ui.Declaration {
	return &FileField{Element: f.Detach()}
}

// SetValue attaches the file at the given path.
func (f *FileField) SetValue(path string) error {
	if err := f.WaitForPresence(0); err != nil {
		return err
	}
	return f.WebElement().SendKeys(path)
}
