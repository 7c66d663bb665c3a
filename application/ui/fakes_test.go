package ui

import (
	"fmt"
	"sync"
	"time"

	"pom/domain/entities"
	"pom/domain/interfaces"
)

// fakeNode is an in-memory interfaces.Node. Marking it stale makes every
// operation fail with ErrStaleNode until the flag is cleared.
type fakeNode struct {
	mu             sync.Mutex
	displayed      bool
	displayedAfter time.Time
	enabled        bool
	content        string
	attrs          map[string]string
	location       entities.Point
	stale          bool

	clicks   int
	children map[string][]interfaces.Node
}

func newFakeNode() *fakeNode {
	return &fakeNode{
		displayed: true,
		enabled:   true,
		attrs:     map[string]string{},
	}
}

func (n *fakeNode) setStale(stale bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stale = stale
}

func (n *fakeNode) check() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stale {
		return fmt.Errorf("%w: fake node", interfaces.ErrStaleNode)
	}
	return nil
}

func (n *fakeNode) Click() error {
	if err := n.check(); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clicks++
	return nil
}

func (n *fakeNode) RightClick() error  { return n.Click() }
func (n *fakeNode) DoubleClick() error { return n.Click() }

func (n *fakeNode) Hover() error { return n.check() }
func (n *fakeNode) Clear() error { return n.check() }

func (n *fakeNode) SendKeys(text string) error {
	if err := n.check(); err != nil {
		return err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attrs["value"] += text
	return nil
}

func (n *fakeNode) GetAttribute(name string) (string, error) {
	if err := n.check(); err != nil {
		return "", err
	}
	return n.attrs[name], nil
}

func (n *fakeNode) IsDisplayed() (bool, error) {
	if err := n.check(); err != nil {
		return false, err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.displayedAfter.IsZero() {
		return time.Now().After(n.displayedAfter), nil
	}
	return n.displayed, nil
}

func (n *fakeNode) IsEnabled() (bool, error) {
	if err := n.check(); err != nil {
		return false, err
	}
	return n.enabled, nil
}

func (n *fakeNode) InnerContent() (string, error) {
	if err := n.check(); err != nil {
		return "", err
	}
	return n.content, nil
}

func (n *fakeNode) Location() (entities.Point, error) {
	if err := n.check(); err != nil {
		return entities.Point{}, err
	}
	return n.location, nil
}

func (n *fakeNode) FindNode(locator entities.Locator) (interfaces.Node, error) {
	if err := n.check(); err != nil {
		return nil, err
	}
	found := n.children[locator.String()]
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchNode, locator)
	}
	return found[0], nil
}

func (n *fakeNode) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	if err := n.check(); err != nil {
		return nil, err
	}
	return n.children[locator.String()], nil
}

// fakeSession is an in-memory interfaces.Session keyed by locator string.
type fakeSession struct {
	mu      sync.Mutex
	nodes   map[string][]interfaces.Node
	finds   int
	scripts []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{nodes: map[string][]interfaces.Node{}}
}

func (s *fakeSession) set(locator entities.Locator, nodes ...interfaces.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[locator.String()] = nodes
}

func (s *fakeSession) findCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finds
}

func (s *fakeSession) FindNode(locator entities.Locator) (interfaces.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	found := s.nodes[locator.String()]
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchNode, locator)
	}
	return found[0], nil
}

func (s *fakeSession) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	return s.nodes[locator.String()], nil
}

func (s *fakeSession) RunScript(script string, args ...interface{}) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts = append(s.scripts, script)
	return nil, nil
}
