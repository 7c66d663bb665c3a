package playwright

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"pom/domain/entities"
	"pom/domain/interfaces"
)

// translate converts a framework locator into a Playwright selector.
func translate(locator entities.Locator) string {
	switch locator.By {
	case entities.ByID:
		return "#" + locator.Value
	case entities.ByCSS:
		return locator.Value
	case entities.ByXPath:
		return "xpath=" + locator.Value
	case entities.ByName:
		return fmt.Sprintf("[name=%q]", locator.Value)
	case entities.ByClass:
		return "." + locator.Value
	case entities.ByLinkText:
		return fmt.Sprintf("text=%q", locator.Value)
	case entities.ByTag:
		return locator.Value
	default:
		return locator.Value
	}
}

// classify maps Playwright failures onto the framework's node-missing
// sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not attached"), strings.Contains(msg, "detached"):
		return fmt.Errorf("%w: %v", interfaces.ErrStaleNode, err)
	case strings.Contains(msg, "no element matches"), strings.Contains(msg, "failed to find element"):
		return fmt.Errorf("%w: %v", interfaces.ErrNoSuchNode, err)
	}
	return err
}

// node wraps a playwright.ElementHandle.
type node struct {
	handle playwright.ElementHandle
}

func (n *node) Click() error {
	return classify(n.handle.Click())
}

func (n *node) RightClick() error {
	return classify(n.handle.Click(playwright.ElementHandleClickOptions{
		Button: playwright.MouseButtonRight,
	}))
}

func (n *node) DoubleClick() error {
	return classify(n.handle.Dblclick())
}

func (n *node) Hover() error {
	return classify(n.handle.Hover())
}

func (n *node) GetAttribute(name string) (string, error) {
	value, err := n.handle.GetAttribute(name)
	if err != nil {
		return "", classify(err)
	}
	return value, nil
}

func (n *node) IsDisplayed() (bool, error) {
	visible, err := n.handle.IsVisible()
	if err != nil {
		return false, classify(err)
	}
	return visible, nil
}

func (n *node) IsEnabled() (bool, error) {
	enabled, err := n.handle.IsEnabled()
	if err != nil {
		return false, classify(err)
	}
	return enabled, nil
}

func (n *node) InnerContent() (string, error) {
	content, err := n.handle.InnerHTML()
	if err != nil {
		return "", classify(err)
	}
	return content, nil
}

func (n *node) Location() (entities.Point, error) {
	box, err := n.handle.BoundingBox()
	if err != nil {
		return entities.Point{}, classify(err)
	}
	if box == nil {
		return entities.Point{}, fmt.Errorf("%w: node has no bounding box", interfaces.ErrStaleNode)
	}
	return entities.Point{X: int(box.X), Y: int(box.Y)}, nil
}

func (n *node) Clear() error {
	return classify(n.handle.Fill(""))
}

func (n *node) SendKeys(text string) error {
	return classify(n.handle.Type(text))
}

func (n *node) FindNode(locator entities.Locator) (interfaces.Node, error) {
	handle, err := n.handle.QuerySelector(translate(locator))
	if err != nil {
		return nil, classify(err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchNode, locator)
	}
	return &node{handle: handle}, nil
}

func (n *node) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	handles, err := n.handle.QuerySelectorAll(translate(locator))
	if err != nil {
		return nil, classify(err)
	}
	nodes := make([]interfaces.Node, len(handles))
	for i, handle := range handles {
		nodes[i] = &node{handle: handle}
	}
	return nodes, nil
}
