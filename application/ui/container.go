package ui

import (
	"fmt"
	"sync"

	"pom/domain/entities"
	"pom/domain/interfaces"
)

// Declaration is the contract a registrable ui element must satisfy. Widget
// types redeclare Clone so registry cloning preserves their concrete type.
type Declaration interface {
	fmt.Stringer
	Clone() Declaration
	SetContainer(container Scope)
}

// Registry holds the named element declarations of one container type. It
// is built once per type, at package level, and shared by every instance of
// that type; instances clone out of it, never mutate it.
type Registry struct {
	decls map[string]Declaration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decls: make(map[string]Declaration)}
}

// Declare adds a named declaration. Duplicate names are a programming
// error and panic.
func (r *Registry) Declare(name string, decl Declaration) *Registry {
	if _, ok := r.decls[name]; ok {
		panic(fmt.Sprintf("pom: ui element %q declared twice", name))
	}
	r.decls[name] = decl
	return r
}

// RegisterUI builds a registry from a name-to-declaration map in one call.
func RegisterUI(decls map[string]Declaration) *Registry {
	r := NewRegistry()
	for name, decl := range decls {
		r.Declare(name, decl)
	}
	return r
}

// elemCache is the per-instance memoization table behind UI: one clone slot
// per declared name, populated on first access and stable for the
// instance's lifetime. The mutex makes first-access installation atomic
// when an instance is shared across goroutines.
type elemCache struct {
	mu    sync.Mutex
	elems map[string]Declaration
}

func (c *elemCache) get(name string, registry *Registry, scope Scope) Declaration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.elems[name]; ok {
		return elem
	}

	if registry == nil {
		panic(fmt.Sprintf("pom: no ui elements registered, cannot resolve %q", name))
	}
	decl, ok := registry.decls[name]
	if !ok {
		panic(fmt.Sprintf("pom: ui element %q is not registered", name))
	}

	clone := decl.Clone()
	clone.SetContainer(scope)
	if c.elems == nil {
		c.elems = make(map[string]Declaration)
	}
	c.elems[name] = clone
	return clone
}

// UIHost is implemented by Container and Block.
type UIHost interface {
	UI(name string) Declaration
}

// Get returns the named element of host as its concrete widget type.
func Get[T Declaration](host UIHost, name string) T {
	return host.UI(name).(T)
}

// Container scopes node lookup to the page root and owns the per-instance
// cache of bound element clones. Embed it in a page type, register the
// page's elements in a package-level registry and Init each instance with a
// driver session and that registry.
type Container struct {
	session  interfaces.Session
	registry *Registry
	elems    elemCache
}

// Init attaches a driver session and the container type's registry.
func (c *Container) Init(session interfaces.Session, registry *Registry) {
	c.session = session
	c.registry = registry
}

// UI returns the container-bound clone of the named declaration. The first
// access per instance clones the declaration and binds it to this
// container; every later access returns the identical clone, so the
// clone's node cache survives across calls. Distinct instances of the same
// container type clone independently and share nothing mutable.
func (c *Container) UI(name string) Declaration {
	return c.elems.get(name, c.registry, c)
}

// FindElement finds a single DOM node inside the container.
func (c *Container) FindElement(locator entities.Locator) (interfaces.Node, error) {
	return c.session.FindNode(locator)
}

// FindElements finds all matching DOM nodes inside the container.
func (c *Container) FindElements(locator entities.Locator) ([]interfaces.Node, error) {
	return c.session.FindNodes(locator)
}

// Session returns the container's driver session.
func (c *Container) Session() interfaces.Session {
	return c.session
}

// Within runs fn with the container as an explicit scope. It acquires and
// releases nothing; it exists to group call sites operating on this
// container.
func (c *Container) Within(fn func()) {
	fn()
}
