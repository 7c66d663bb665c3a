package ui

import (
	"pom/domain/entities"
	"pom/domain/interfaces"
)

// nodeProxy makes reads and actions on a resolved node robust to the node's
// disappearance. It caches the most recent successful resolution and, on a
// node-missing signal, flushes the cache and re-resolves exactly once:
// once when resolving the node, and once more when an operation on an
// already-resolved node fails because the node went stale in between.
// A second consecutive failure propagates unchanged.
type nodeProxy struct {
	resolve func() (interfaces.Node, error)
	label   string
	cached  interfaces.Node
}

func newNodeProxy(resolve func() (interfaces.Node, error), label string) *nodeProxy {
	return &nodeProxy{resolve: resolve, label: label}
}

func (p *nodeProxy) node() (interfaces.Node, error) {
	if p.cached != nil {
		return p.cached, nil
	}
	n, err := p.resolve()
	if err != nil {
		return nil, err
	}
	p.cached = n
	return n, nil
}

func (p *nodeProxy) flush() {
	logger.Debugf("%s is not present in DOM, cache flushed", p.label)
	p.cached = nil
}

// do resolves the node and runs op against it, applying the single-retry
// recovery at both layers. Errors that are not node-missing conditions
// (index out of range in particular) are never retried.
func (p *nodeProxy) do(op func(interfaces.Node) error) error {
	n, err := p.node()
	if err != nil {
		if !interfaces.IsNodeMissing(err) {
			return err
		}
		p.flush()
		if n, err = p.node(); err != nil {
			return err
		}
	}

	err = op(n)
	if err == nil || !interfaces.IsNodeMissing(err) {
		return err
	}

	p.flush()
	if n, err = p.node(); err != nil {
		return err
	}
	return op(n)
}

func (p *nodeProxy) Click() error {
	return p.do(interfaces.Node.Click)
}

func (p *nodeProxy) RightClick() error {
	return p.do(interfaces.Node.RightClick)
}

func (p *nodeProxy) DoubleClick() error {
	return p.do(interfaces.Node.DoubleClick)
}

func (p *nodeProxy) Hover() error {
	return p.do(interfaces.Node.Hover)
}

func (p *nodeProxy) Clear() error {
	return p.do(interfaces.Node.Clear)
}

func (p *nodeProxy) SendKeys(text string) error {
	return p.do(func(n interfaces.Node) error {
		return n.SendKeys(text)
	})
}

func (p *nodeProxy) GetAttribute(name string) (string, error) {
	var value string
	err := p.do(func(n interfaces.Node) error {
		var err error
		value, err = n.GetAttribute(name)
		return err
	})
	return value, err
}

func (p *nodeProxy) IsDisplayed() (bool, error) {
	var displayed bool
	err := p.do(func(n interfaces.Node) error {
		var err error
		displayed, err = n.IsDisplayed()
		return err
	})
	return displayed, err
}

func (p *nodeProxy) IsEnabled() (bool, error) {
	var enabled bool
	err := p.do(func(n interfaces.Node) error {
		var err error
		enabled, err = n.IsEnabled()
		return err
	})
	return enabled, err
}

func (p *nodeProxy) InnerContent() (string, error) {
	var content string
	err := p.do(func(n interfaces.Node) error {
		var err error
		content, err = n.InnerContent()
		return err
	})
	return content, err
}

func (p *nodeProxy) Location() (entities.Point, error) {
	var loc entities.Point
	err := p.do(func(n interfaces.Node) error {
		var err error
		loc, err = n.Location()
		return err
	})
	return loc, err
}

func (p *nodeProxy) FindNode(locator entities.Locator) (interfaces.Node, error) {
	var found interfaces.Node
	err := p.do(func(n interfaces.Node) error {
		var err error
		found, err = n.FindNode(locator)
		return err
	})
	return found, err
}

func (p *nodeProxy) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	var found []interfaces.Node
	err := p.do(func(n interfaces.Node) error {
		var err error
		found, err = n.FindNodes(locator)
		return err
	})
	return found, err
}
