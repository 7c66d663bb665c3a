package interfaces

import (
	"errors"

	"pom/domain/entities"
)

// Node-missing conditions. Adapters classify their native failures into
// these two sentinels; everything else passes through unchanged.
var (
	// ErrNoSuchNode is returned when a lookup matches zero nodes.
	ErrNoSuchNode = errors.New("no such node")

	// ErrStaleNode is returned when a previously resolved node no longer
	// corresponds to a live DOM element.
	ErrStaleNode = errors.New("stale node reference")
)

// IsNodeMissing reports whether err is a transient node-missing condition
// eligible for the proxy's single-retry recovery.
func IsNodeMissing(err error) bool {
	return errors.Is(err, ErrNoSuchNode) || errors.Is(err, ErrStaleNode)
}

// Node is a live handle to a DOM element. Any method may fail with a
// node-missing condition at any time.
type Node interface {
	Click() error
	RightClick() error
	DoubleClick() error
	Hover() error
	GetAttribute(name string) (string, error)
	IsDisplayed() (bool, error)
	IsEnabled() (bool, error)
	InnerContent() (string, error)
	Location() (entities.Point, error)
	Clear() error
	SendKeys(text string) error

	// FindNode locates a single node under this node's subtree. It fails
	// with ErrNoSuchNode when zero nodes match.
	FindNode(locator entities.Locator) (Node, error)

	// FindNodes locates all matching nodes under this node's subtree.
	// Zero matches yield an empty slice, not an error.
	FindNodes(locator entities.Locator) ([]Node, error)
}

// Session is the page-root driver capability handed to top-level containers.
type Session interface {
	// FindNode locates a single node on the page. It fails with
	// ErrNoSuchNode when zero nodes match.
	FindNode(locator entities.Locator) (Node, error)

	// FindNodes locates all matching nodes on the page.
	FindNodes(locator entities.Locator) ([]Node, error)

	// RunScript executes a script in the page context.
	RunScript(script string, args ...interface{}) (interface{}, error)
}
