package widgets_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"pom/application/ui"
	"pom/application/widgets"
	"pom/domain/entities"
	"pom/domain/interfaces"
)

// stubNode is a minimal interfaces.Node for widget behavior tests.
type stubNode struct {
	attrs    map[string]string
	content  string
	clicks   int
	typed    string
	cleared  bool
	children map[string][]interfaces.Node
}

func newStubNode() *stubNode {
	return &stubNode{attrs: map[string]string{}, children: map[string][]interfaces.Node{}}
}

func (n *stubNode) Click() error       { n.clicks++; return nil }
func (n *stubNode) RightClick() error  { return nil }
func (n *stubNode) DoubleClick() error { return nil }
func (n *stubNode) Hover() error       { return nil }
func (n *stubNode) Clear() error       { n.cleared = true; n.attrs["value"] = ""; return nil }

func (n *stubNode) SendKeys(text string) error {
	n.typed += text
	n.attrs["value"] += text
	return nil
}

func (n *stubNode) GetAttribute(name string) (string, error) { return n.attrs[name], nil }
func (n *stubNode) IsDisplayed() (bool, error)               { return true, nil }
func (n *stubNode) IsEnabled() (bool, error)                 { return true, nil }
func (n *stubNode) InnerContent() (string, error)            { return n.content, nil }
func (n *stubNode) Location() (entities.Point, error)        { return entities.Point{}, nil }

func (n *stubNode) FindNode(locator entities.Locator) (interfaces.Node, error) {
	if found := n.children[locator.String()]; len(found) > 0 {
		return found[0], nil
	}
	return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchNode, locator)
}

func (n *stubNode) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	return n.children[locator.String()], nil
}

// stubSession maps locator strings to nodes at page scope.
type stubSession struct {
	nodes map[string][]interfaces.Node
}

func newStubSession() *stubSession {
	return &stubSession{nodes: map[string][]interfaces.Node{}}
}

func (s *stubSession) set(locator entities.Locator, nodes ...interfaces.Node) {
	s.nodes[locator.String()] = nodes
}

func (s *stubSession) FindNode(locator entities.Locator) (interfaces.Node, error) {
	found := s.nodes[locator.String()]
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrNoSuchNode, locator)
	}
	return found[0], nil
}

func (s *stubSession) FindNodes(locator entities.Locator) ([]interfaces.Node, error) {
	return s.nodes[locator.String()], nil
}

func (s *stubSession) RunScript(script string, args ...interface{}) (interface{}, error) {
	return nil, nil
}

func newPage(session *stubSession, registry *ui.Registry) *ui.Container {
	page := &ui.Container{}
	page.Init(session, registry)
	return page
}

func TestCheckBoxSelectClicksOnlyWhenUnchecked(t *testing.T) {
	session := newStubSession()
	node := newStubNode()
	session.set(entities.NewLocator(entities.ByName, "remember"), node)

	box := widgets.NewCheckBox(entities.ByName, "remember")
	page := newPage(session, ui.RegisterUI(map[string]ui.Declaration{"box": box}))
	bound := ui.Get[*widgets.CheckBox](page, "box")

	require.NoError(t, bound.Select())
	require.Equal(t, 1, node.clicks)

	node.attrs["checked"] = "true"
	require.NoError(t, bound.Select())
	require.Equal(t, 1, node.clicks)

	require.NoError(t, bound.Unselect())
	require.Equal(t, 2, node.clicks)
}

func TestTextFieldSetValueClearsThenTypes(t *testing.T) {
	session := newStubSession()
	node := newStubNode()
	node.attrs["value"] = "old"
	session.set(entities.NewLocator(entities.ByID, "username"), node)

	field := widgets.NewTextField(entities.ByID, "username")
	page := newPage(session, ui.RegisterUI(map[string]ui.Declaration{"username": field}))
	bound := ui.Get[*widgets.TextField](page, "username")

	require.NoError(t, bound.SetValue("demo"))
	require.True(t, node.cleared)
	require.Equal(t, "demo", node.typed)

	value, err := bound.Value()
	require.NoError(t, err)
	require.Equal(t, "demo", value)
}

func TestIntegerFieldRoundTrip(t *testing.T) {
	session := newStubSession()
	node := newStubNode()
	session.set(entities.NewLocator(entities.ByID, "port"), node)

	field := widgets.NewIntegerField(entities.ByID, "port")
	page := newPage(session, ui.RegisterUI(map[string]ui.Declaration{"port": field}))
	bound := ui.Get[*widgets.IntegerField](page, "port")

	require.NoError(t, bound.SetInt(8080))

	value, err := bound.Int()
	require.NoError(t, err)
	require.Equal(t, 8080, value)
}

func TestLinkHref(t *testing.T) {
	session := newStubSession()
	node := newStubNode()
	node.attrs["href"] = "/logout"
	session.set(entities.NewLocator(entities.ByLinkText, "Sign out"), node)

	link := widgets.NewLink(entities.ByLinkText, "Sign out")
	page := newPage(session, ui.RegisterUI(map[string]ui.Declaration{"signout": link}))
	bound := ui.Get[*widgets.Link](page, "signout")

	href, err := bound.Href()
	require.NoError(t, err)
	require.Equal(t, "/logout", href)
}

func TestComboBoxSetValueClicksOption(t *testing.T) {
	session := newStubSession()
	option := newStubNode()
	selectNode := newStubNode()
	selectNode.children[entities.NewLocator(entities.ByCSS, `option[value="ru"]`).String()] = []interfaces.Node{option}
	session.set(entities.NewLocator(entities.ByID, "lang"), selectNode)

	combo := widgets.NewComboBox(entities.ByID, "lang")
	page := newPage(session, ui.RegisterUI(map[string]ui.Declaration{"lang": combo}))
	bound := ui.Get[*widgets.ComboBox](page, "lang")

	require.NoError(t, bound.SetValue("ru"))
	require.Equal(t, 1, option.clicks)
}

func TestTableRowsAreScopedBlocks(t *testing.T) {
	session := newStubSession()
	cell := newStubNode()
	cell.content = "  second row  "
	row0, row1 := newStubNode(), newStubNode()
	row1.children[entities.NewLocator(entities.ByCSS, ".name").String()] = []interfaces.Node{cell}

	tableNode := newStubNode()
	rowLocator := entities.NewLocator(entities.ByTag, "tr")
	tableNode.children[rowLocator.String()] = []interfaces.Node{row0, row1}
	session.set(entities.NewLocator(entities.ByID, "users"), tableNode)

	cellUI := ui.RegisterUI(map[string]ui.Declaration{
		"name": ui.New(entities.ByCSS, ".name"),
	})
	table := widgets.NewTable(entities.ByID, "users", cellUI)
	page := newPage(session, ui.RegisterUI(map[string]ui.Declaration{"users": table}))
	bound := ui.Get[*widgets.Table](page, "users")

	size, err := bound.Size()
	require.NoError(t, err)
	require.Equal(t, 2, size)

	name := ui.Get[*ui.Element](bound.Row(1), "name")
	value, err := name.Value()
	require.NoError(t, err)
	require.Equal(t, "second row", value)
}

func TestWidgetCloneKeepsConcreteType(t *testing.T) {
	fieldUI := ui.RegisterUI(map[string]ui.Declaration{
		"name": ui.New(entities.ByCSS, ".name"),
	})
	registry := ui.RegisterUI(map[string]ui.Declaration{
		"button": widgets.NewButton(entities.ByID, "a"),
		"field":  widgets.NewTextField(entities.ByID, "b"),
		"box":    widgets.NewCheckBox(entities.ByID, "c"),
		"link":   widgets.NewLink(entities.ByID, "d"),
		"combo":  widgets.NewComboBox(entities.ByID, "e"),
		"form":   widgets.NewForm(entities.ByID, "f", fieldUI),
		"table":  widgets.NewTable(entities.ByID, "g", fieldUI),
		"list":   widgets.NewList(entities.ByID, "h"),
	})

	session := newStubSession()
	page := newPage(session, registry)

	require.IsType(t, &widgets.Button{}, page.UI("button"))
	require.IsType(t, &widgets.TextField{}, page.UI("field"))
	require.IsType(t, &widgets.CheckBox{}, page.UI("box"))
	require.IsType(t, &widgets.Link{}, page.UI("link"))
	require.IsType(t, &widgets.ComboBox{}, page.UI("combo"))
	require.IsType(t, &widgets.Form{}, page.UI("form"))
	require.IsType(t, &widgets.Table{}, page.UI("table"))
	require.IsType(t, &widgets.List{}, page.UI("list"))
}

func TestFormClonesHostFieldsIndependently(t *testing.T) {
	fieldUI := ui.RegisterUI(map[string]ui.Declaration{
		"username": widgets.NewTextField(entities.ByID, "username"),
	})
	registry := ui.RegisterUI(map[string]ui.Declaration{
		"form": widgets.NewForm(entities.ByID, "login-form", fieldUI),
	})

	session := newStubSession()
	page1 := newPage(session, registry)
	page2 := newPage(session, registry)

	form1 := ui.Get[*widgets.Form](page1, "form")
	form2 := ui.Get[*widgets.Form](page2, "form")
	require.NotSame(t, form1, form2)

	field1 := ui.Get[*widgets.TextField](form1, "username")
	field2 := ui.Get[*widgets.TextField](form2, "username")
	require.NotSame(t, field1, field2)
	require.Same(t, field1, ui.Get[*widgets.TextField](form1, "username"))
}
