package ui

import (
	"pom/domain/entities"
	"pom/domain/interfaces"
)

// Block is a containerable ui element: a sub-region of the page that hosts
// its own elements. Lookups inside the block first wait for the block
// itself, then search under the block's own resolved node, which is how
// containers nest arbitrarily (page, panel, row, cell).
//
// The element cache lives behind a pointer so a Block value can be copied
// into an embedding widget without copying the cache's lock; always build
// blocks through NewBlock, NewIndexedBlock or Detach.
type Block struct {
	Element

	registry *Registry
	elems    *elemCache
}

// NewBlock creates an unbound block declaration hosting the registered
// elements.
func NewBlock(by, value string, registry *Registry) *Block {
	return &Block{Element: *New(by, value), registry: registry, elems: &elemCache{}}
}

// NewIndexedBlock creates an unbound block declaration selecting the
// index-th match of the locator.
func NewIndexedBlock(by, value string, index int, registry *Registry) *Block {
	return &Block{Element: *NewIndexed(by, value, index), registry: registry, elems: &elemCache{}}
}

// Detach returns a fresh unbound Block value sharing the registry but
// nothing mutable: the element cache and any resolved node stay behind.
// Widget types embedding Block rebuild their clones around it, mirroring
// Element.Detach.
func (b *Block) Detach() Block {
	return Block{Element: b.Element.Detach(), registry: b.registry, elems: &elemCache{}}
}

// Clone returns a fresh unbound block, per Detach.
func (b *Block) Clone() Declaration {
	block := b.Detach()
	return &block
}

// UI returns the block-bound clone of the named declaration, with the same
// per-instance caching as Container.UI.
func (b *Block) UI(name string) Declaration {
	return b.elems.get(name, b.registry, b)
}

// FindElement finds a single DOM node inside the block.
func (b *Block) FindElement(locator entities.Locator) (interfaces.Node, error) {
	if err := b.WaitForPresence(0); err != nil {
		return nil, err
	}
	return b.WebElement().FindNode(locator)
}

// FindElements finds all matching DOM nodes inside the block.
func (b *Block) FindElements(locator entities.Locator) ([]interfaces.Node, error) {
	if err := b.WaitForPresence(0); err != nil {
		return nil, err
	}
	return b.WebElement().FindNodes(locator)
}

// Within runs fn with the block as an explicit scope; a no-op hook, same as
// Container.Within.
func (b *Block) Within(fn func()) {
	fn()
}
