package widgets

import (
	"pom/application/ui"
	"pom/domain/entities"
)

// Row is one row of a table, a block so cells can be registered on it.
type Row struct {
	ui.Block
}

// NewRow creates an unbound row declaration for the index-th row match.
func NewRow(by, value string, index int, registry *ui.Registry) *Row {
	return &Row{Block: *ui.NewIndexedBlock(by, value, index, registry)}
}

func (r *Row) Clone() ui.Declaration {
	return &Row{Block: r.Block.Detach()}
}

// Table is a block over a table element. Rows are looked up by tag and
// bound to the table, so cell lookups stay scoped under their row.
type Table struct {
	ui.Block

	rowRegistry *ui.Registry
}

// NewTable creates an unbound table declaration. rowRegistry holds the
// cell declarations shared by every row.
func NewTable(by, value string, rowRegistry *ui.Registry) *Table {
	return &Table{Block: *ui.NewBlock(by, value, nil), rowRegistry: rowRegistry}
}

func (t *Table) Clone() ui.Declaration {
	return &Table{Block: t.Block.Detach(), rowRegistry: t.rowRegistry}
}

// Size returns the current number of rows.
func (t *Table) Size() (int, error) {
	nodes, err := t.FindElements(entities.NewLocator(entities.ByTag, "tr"))
	if err != nil {
		return 0, err
	}
	return len(nodes), nil
}

// Row returns the index-th row (0-based), bound to this table.
func (t *Table) Row(index int) *Row {
	row := NewRow(entities.ByTag, "tr", index, t.rowRegistry)
	row.SetContainer(t)
	return row
}

// Rows returns all current rows, bound to this table.
func (t *Table) Rows() ([]*Row, error) {
	size, err := t.Size()
	if err != nil {
		return nil, err
	}
	rows := make([]*Row, size)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows, nil
}

// List is a block over a list element; items are plain elements.
type List struct {
	ui.Block
}

// NewList creates an unbound list declaration.
func NewList(by, value string) *List {
	return &List{Block: *ui.NewBlock(by, value, nil)}
}

func (l *List) Clone() ui.Declaration {
	return &List{Block: l.Block.Detach()}
}

// Size returns the current number of items.
func (l *List) Size() (int, error) {
	nodes, err := l.FindElements(entities.NewLocator(entities.ByTag, "li"))
	if err != nil {
		return 0, err
	}
	return len(nodes), nil
}

// Item returns the index-th item (0-based), bound to this list.
func (l *List) Item(index int) *ui.Element {
	item := ui.NewIndexed(entities.ByTag, "li", index)
	item.SetContainer(l)
	return item
}
