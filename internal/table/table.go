// Package table implements the searchable, sortable entity listings.
// Filtering and ordering are pure slice operations so the CLI and the
// interactive view render from the same state.
package table

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the current sort direction of a column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Column describes one listing column of entity type T.
type Column[T any] struct {
	// Key identifies the column for sort requests
	Key string

	// Title is the rendered header
	Title string

	// String renders the cell and doubles as the lexical sort key
	String func(T) string

	// Number, when set, makes the column sort numerically instead
	Number func(T) float64

	// Sortable gates SortBy; requests on other columns are ignored
	Sortable bool
}

// Table holds the rows of one listing together with its sort state.
type Table[T any] struct {
	columns  []Column[T]
	rows     []T
	collator *collate.Collator

	sortKey   string
	direction Direction
}

// New builds a table over the given columns. The collation tag decides how
// lexical columns compare (case-insensitive, locale-aware).
func New[T any](tag language.Tag, columns []Column[T]) *Table[T] {
	return &Table[T]{
		columns:  columns,
		collator: collate.New(tag, collate.IgnoreCase),
	}
}

// Columns returns the column descriptors in display order.
func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// SetRows replaces the rows and re-applies the active sort, so a refresh
// after an edit keeps the user's chosen order.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.apply()
}

// Rows returns the rows in their current order.
func (t *Table[T]) Rows() []T {
	return t.rows
}

// SortKey returns the active sort column key and direction; the key is
// empty while the listing is unsorted.
func (t *Table[T]) SortKey() (string, Direction) {
	return t.sortKey, t.direction
}

// SortBy orders the rows by the named column. A repeated request on the
// active column flips the direction; switching columns resets to ascending.
// Requests naming a non-sortable or unknown column leave the order alone.
func (t *Table[T]) SortBy(key string) {
	col := t.column(key)
	if col == nil || !col.Sortable {
		return
	}

	if t.sortKey == key {
		if t.direction == Ascending {
			t.direction = Descending
		} else {
			t.direction = Ascending
		}
	} else {
		t.sortKey = key
		t.direction = Ascending
	}
	t.apply()
}

func (t *Table[T]) column(key string) *Column[T] {
	for i := range t.columns {
		if t.columns[i].Key == key {
			return &t.columns[i]
		}
	}
	return nil
}

func (t *Table[T]) apply() {
	col := t.column(t.sortKey)
	if col == nil {
		return
	}

	less := func(a, b T) bool {
		if col.Number != nil {
			return col.Number(a) < col.Number(b)
		}
		return t.collator.CompareString(col.String(a), col.String(b)) < 0
	}

	// Stable keeps equal rows in server order across direction flips.
	sort.SliceStable(t.rows, func(i, j int) bool {
		if t.direction == Descending {
			return less(t.rows[j], t.rows[i])
		}
		return less(t.rows[i], t.rows[j])
	})
}

// Filter returns the rows whose label contains the query, matched without
// regard to case. An empty query keeps every row.
func Filter[T any](rows []T, query string, label func(T) string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(label(row)), query) {
			out = append(out, row)
		}
	}
	return out
}
