// Package ui implements the resilient element layer of the framework:
// declarative ui elements cloned per container instance, a caching node
// proxy that survives one DOM-refresh race per operation, and poll-based
// presence waits.
package ui

import (
	"fmt"
	"strings"
	"time"

	"pom/domain/entities"
	"pom/domain/interfaces"
)

// Scope is anything that can host ui elements: a page-root container or a
// block nested inside another container.
type Scope interface {
	FindElement(locator entities.Locator) (interfaces.Node, error)
	FindElements(locator entities.Locator) ([]interfaces.Node, error)
	Session() interfaces.Session
}

// Element is the declarative unit of the framework: a locator, an optional
// ordinal index and, after cloning, a back-reference to the container it is
// bound to. A class-level declaration is never bound directly; the
// container's registry clones it per instance first.
type Element struct {
	locator entities.Locator
	index   int // -1 when unset: exactly one match expected
	timeout time.Duration

	container Scope
	proxy     interfaces.Node
}

// New creates an unbound element declaration.
func New(by, value string) *Element {
	return &Element{
		locator: entities.NewLocator(by, value),
		index:   -1,
		timeout: DefaultTimeout,
	}
}

// NewIndexed creates an unbound declaration selecting the index-th match
// (0-based) of a locator expected to match several nodes.
func NewIndexed(by, value string, index int) *Element {
	e := New(by, value)
	e.index = index
	return e
}

// String returns the diagnostic label "{strategy}={value}[, index={n}]".
func (e *Element) String() string {
	if e.index >= 0 {
		return fmt.Sprintf("%s, index=%d", e.locator, e.index)
	}
	return e.locator.String()
}

// Clone returns a fresh unbound copy carrying only the locator, index and
// timeout. The container binding and any cached proxy are deliberately
// dropped so proxy caches never leak across containers.
func (e *Element) Clone() Declaration {
	c := e.Detach()
	return &c
}

// Detach returns the unbound Element value Clone is built from. Widget
// types embed Element and use Detach to rebuild clones of their own type.
func (e *Element) Detach() Element {
	return Element{locator: e.locator, index: e.index, timeout: e.timeout}
}

// SetContainer binds the element to its hosting scope.
func (e *Element) SetContainer(container Scope) {
	e.container = container
}

// Container returns the hosting scope, nil while unbound.
func (e *Element) Container() Scope {
	return e.container
}

// SetTimeout overrides the default presence/absence wait timeout.
func (e *Element) SetTimeout(timeout time.Duration) {
	e.timeout = timeout
}

func (e *Element) mustContainer() Scope {
	if e.container == nil {
		panic(fmt.Sprintf("pom: ui element %q is not bound to a container", e.String()))
	}
	return e.container
}

// Session returns the driver session of the hosting container.
func (e *Element) Session() interfaces.Session {
	return e.mustContainer().Session()
}

// WebElement returns the proxied node handle for this element, building it
// lazily on first access and caching it on the clone for the lifetime of
// the owning container instance.
func (e *Element) WebElement() interfaces.Node {
	if e.proxy != nil {
		return e.proxy
	}

	container := e.mustContainer()
	locator := e.locator
	label := e.String()

	var resolve func() (interfaces.Node, error)
	if index := e.index; index >= 0 {
		resolve = func() (interfaces.Node, error) {
			nodes, err := container.FindElements(locator)
			if err != nil {
				return nil, err
			}
			if index >= len(nodes) {
				return nil, &IndexError{Label: label, Index: index, Count: len(nodes)}
			}
			return nodes[index], nil
		}
	} else {
		resolve = func() (interfaces.Node, error) {
			return container.FindElement(locator)
		}
	}

	e.proxy = newNodeProxy(resolve, label)
	return e.proxy
}

// guarded waits for the element's presence, then runs op on the proxied node.
func (e *Element) guarded(op func(interfaces.Node) error) error {
	if err := e.WaitForPresence(0); err != nil {
		return err
	}
	return op(e.WebElement())
}

// Click clicks the element.
func (e *Element) Click() error {
	return e.guarded(interfaces.Node.Click)
}

// RightClick opens the element's context menu.
func (e *Element) RightClick() error {
	return e.guarded(interfaces.Node.RightClick)
}

// DoubleClick double clicks the element.
func (e *Element) DoubleClick() error {
	return e.guarded(interfaces.Node.DoubleClick)
}

// MoveTo hovers the pointer over the element.
func (e *Element) MoveTo() error {
	return e.guarded(interfaces.Node.Hover)
}

// ScrollTo scrolls the window to the element's location.
func (e *Element) ScrollTo() error {
	if err := e.WaitForPresence(0); err != nil {
		return err
	}
	loc, err := e.WebElement().Location()
	if err != nil {
		return err
	}
	_, err = e.Session().RunScript(fmt.Sprintf("window.scroll(%d, %d);", loc.X, loc.Y))
	return err
}

// GetAttribute returns the current value of the named DOM attribute.
func (e *Element) GetAttribute(name string) (string, error) {
	if err := e.WaitForPresence(0); err != nil {
		return "", err
	}
	return e.WebElement().GetAttribute(name)
}

// Value returns the element's inner content, trimmed of surrounding
// whitespace.
func (e *Element) Value() (string, error) {
	if err := e.WaitForPresence(0); err != nil {
		return "", err
	}
	content, err := e.WebElement().InnerContent()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// IsEnabled reports whether the driver considers the element enabled.
// Not presence-guarded.
func (e *Element) IsEnabled() (bool, error) {
	return e.WebElement().IsEnabled()
}

// IsPresent reports whether the element resolves and is displayed. It never
// fails: a node-missing condition reads as absence. This is the predicate
// the wait primitives poll on.
func (e *Element) IsPresent() bool {
	displayed, err := e.WebElement().IsDisplayed()
	if err != nil {
		return false
	}
	return displayed
}

// WaitForPresence polls until the element is present. Non-positive timeout
// uses the element's own timeout.
func (e *Element) WaitForPresence(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = e.timeout
	}
	if err := Poll(e.IsPresent, timeout, DefaultInterval, e.String()); err != nil {
		return &PresenceError{Label: e.String(), Timeout: timeout}
	}
	return nil
}

// WaitForAbsence polls until the element is gone. Non-positive timeout uses
// the element's own timeout.
func (e *Element) WaitForAbsence(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = e.timeout
	}
	absent := func() bool { return !e.IsPresent() }
	if err := Poll(absent, timeout, DefaultInterval, e.String()); err != nil {
		return &PresenceError{Label: e.String(), Timeout: timeout, StillPresent: true}
	}
	return nil
}
