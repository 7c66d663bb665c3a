package selenium

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"

	"pom/domain/entities"
	"pom/domain/interfaces"
)

// classify maps Selenium failures onto the framework's node-missing
// sentinels. The WebDriver wire protocol only exposes the condition in the
// message text.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "stale element reference"):
		return fmt.Errorf("%w: %v", interfaces.ErrStaleNode, err)
	case strings.Contains(msg, "no such element"), strings.Contains(msg, "unable to locate element"):
		return fmt.Errorf("%w: %v", interfaces.ErrNoSuchNode, err)
	}
	return err
}

// node wraps a selenium.WebElement. Pointer actions (right click, double
// click, hover) move the pointer onto the element first, then act at the
// current position.
type node struct {
	el selenium.WebElement
	wd selenium.WebDriver
}

func (n *node) Click() error {
	return classify(n.el.Click())
}

// pointTo parks the pointer on the element. MoveTo offsets are read as
// corner-relative by the legacy wire protocol and center-relative under
// W3C, so (0, 0) is the only offset that lands on the element under both
// readings; on a thin-bordered element the legacy reading can put the
// pointer on the top-left edge.
func (n *node) pointTo() error {
	return classify(n.el.MoveTo(0, 0))
}

func (n *node) RightClick() error {
	if err := n.pointTo(); err != nil {
		return err
	}
	return classify(n.wd.Click(selenium.RightButton))
}

func (n *node) DoubleClick() error {
	if err := n.pointTo(); err != nil {
		return err
	}
	return classify(n.wd.DoubleClick())
}

func (n *node) Hover() error {
	return n.pointTo()
}

func (n *node) GetAttribute(name string) (string, error) {
	value, err := n.el.GetAttribute(name)
	if err != nil {
		return "", classify(err)
	}
	return value, nil
}

func (n *node) IsDisplayed() (bool, error) {
	displayed, err := n.el.IsDisplayed()
	if err != nil {
		return false, classify(err)
	}
	return displayed, nil
}

func (n *node) IsEnabled() (bool, error) {
	enabled, err := n.el.IsEnabled()
	if err != nil {
		return false, classify(err)
	}
	return enabled, nil
}

func (n *node) InnerContent() (string, error) {
	content, err := n.el.GetAttribute("innerHTML")
	if err != nil {
		return "", classify(err)
	}
	return content, nil
}

func (n *node) Location() (entities.Point, error) {
	point, err := n.el.Location()
	if err != nil {
		return entities.Point{}, classify(err)
	}
	return entities.Point{X: point.X, Y: point.Y}, nil
}

func (n *node) Clear() error {
	return classify(n.el.Clear())
}

func (n *node) SendKeys(text string) error {
	return classify(n.el.SendKeys(text))
}

func (n *node) FindNode(locator entities.Locator) (interfaces.Node, error) {
	el, err := n.el.FindElement(locator.By, locator.Value)
	if err != nil {
		return nil, classify(err)
	}
	return &node{el: el, wd: n.wd}, nil
}

func (n *node) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	els, err := n.el.FindElements(locator.By, locator.Value)
	if err != nil {
		return nil, classify(err)
	}
	nodes := make([]interfaces.Node, len(els))
	for i, el := range els {
		nodes[i] = &node{el: el, wd: n.wd}
	}
	return nodes, nil
}
