package entities

import "fmt"

// Locator strategies. Values match the WebDriver wire protocol so the
// selenium adapter can pass them through unchanged.
const (
	ByID       = "id"
	ByXPath    = "xpath"
	ByCSS      = "css selector"
	ByName     = "name"
	ByClass    = "class name"
	ByLinkText = "link text"
	ByTag      = "tag name"
)

// Locator describes how to find zero or more nodes relative to a scope.
// It is an immutable value; construct a new one instead of mutating.
type Locator struct {
	By    string
	Value string
}

// NewLocator - creates a locator from a strategy and a value
func NewLocator(by, value string) Locator {
	return Locator{By: by, Value: value}
}

// String returns the stable "{strategy}={value}" form used in diagnostics.
func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.By, l.Value)
}

// Point represents a node position on the page
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
