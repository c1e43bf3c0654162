package table

import (
	"io"

	"github.com/go-sif/coltable"
	"github.com/go-sif/coltable/column"
	"github.com/go-sif/coltable/errors"
	uuid "github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// newID generates identifiers for Tables and Columns
var newID = func() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// link owns one Column and, through next, the remainder of a Table's chain
type link[T any] struct {
	col  *column.Column[T]
	next *link[T]
}

// Table is an ordered collection of named Columns sharing the element type T.
// Columns are always appended and may hold different numbers of elements.
// A Table is not safe for concurrent use.
type Table[T any] struct {
	id         string
	name       string
	size       int
	head       *link[T]
	cellWidth  int
	maxColumns int
	out        io.Writer
	logger     *zerolog.Logger
	formatter  coltable.Formatter[T]
}

// New creates an empty Table. opts may be nil. New panics if the system's
// source of randomness cannot produce an identifier.
func New[T any](opts *Options[T]) *Table[T] {
	o := withDefaults(opts)
	id, err := newID()
	if err != nil {
		panic(err)
	}
	return &Table[T]{
		id:         id,
		name:       o.Name,
		cellWidth:  o.CellWidth,
		maxColumns: o.MaxColumns,
		out:        o.Out,
		logger:     o.Logger,
		formatter:  o.Formatter,
	}
}

// ID returns the unique identifier of this Table
func (t *Table[T]) ID() string {
	return t.id
}

// GetName returns the title of this Table
func (t *Table[T]) GetName() string {
	return t.name
}

// SetName replaces the title of this Table
func (t *Table[T]) SetName(name string) {
	t.name = name
}

// GetSize returns the number of Columns in this Table
func (t *Table[T]) GetSize() int {
	return t.size
}

// GetCellWidth returns the printed width of every cell
func (t *Table[T]) GetCellWidth() int {
	return t.cellWidth
}

// SetCellWidth sets the printed width of every cell. Negative widths print as 0.
func (t *Table[T]) SetCellWidth(width int) {
	t.cellWidth = width
}

// AddColumn appends a new, empty Column with the given name. Any failure while
// creating the Column is reported as an AddFailureError.
func (t *Table[T]) AddColumn(name string) error {
	if t.maxColumns > 0 && t.size >= t.maxColumns {
		return t.reject("AddColumn", errors.AddFailureError{Name: name, Err: errors.CapacityError{Max: t.maxColumns}})
	}
	id, err := newID()
	if err != nil {
		return t.reject("AddColumn", errors.AddFailureError{Name: name, Err: err})
	}
	l := &link[T]{col: column.NewWithID[T](id, name)}
	if t.head == nil {
		t.head = l
	} else {
		cur := t.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = l
	}
	t.size++
	t.logger.Debug().Str("table", t.name).Str("column", name).Int("index", t.size-1).Msg("Added column")
	return nil
}

// GetColumn returns the Column at columnIndex
func (t *Table[T]) GetColumn(columnIndex int) (*column.Column[T], error) {
	col, err := t.locate(columnIndex)
	if err != nil {
		return nil, t.reject("GetColumn", err)
	}
	return col, nil
}

// GetColumnName returns the name of the Column at columnIndex
func (t *Table[T]) GetColumnName(columnIndex int) (string, error) {
	col, err := t.locate(columnIndex)
	if err != nil {
		return "", t.reject("GetColumnName", err)
	}
	return col.GetName(), nil
}

// PushBack appends a value to the Column at columnIndex
func (t *Table[T]) PushBack(columnIndex int, v T) error {
	col, err := t.locate(columnIndex)
	if err != nil {
		return t.reject("PushBack", err)
	}
	col.PushBack(v)
	return nil
}

// PushIndex inserts a value into the Column at columnIndex so that it becomes
// the element at elementIndex
func (t *Table[T]) PushIndex(columnIndex int, elementIndex int, v T) error {
	col, err := t.locate(columnIndex)
	if err != nil {
		return t.reject("PushIndex", err)
	}
	if err := col.PushIndex(elementIndex, v); err != nil {
		return t.reject("PushIndex", err)
	}
	return nil
}

// DeleteBack removes the last element of the Column at columnIndex. Deleting
// from an empty Column does nothing.
func (t *Table[T]) DeleteBack(columnIndex int) error {
	col, err := t.locate(columnIndex)
	if err != nil {
		return t.reject("DeleteBack", err)
	}
	col.DeleteBack()
	return nil
}

// DeleteIndex removes the element at elementIndex from the Column at columnIndex
func (t *Table[T]) DeleteIndex(columnIndex int, elementIndex int) error {
	col, err := t.locate(columnIndex)
	if err != nil {
		return t.reject("DeleteIndex", err)
	}
	if elementIndex < 0 || elementIndex >= col.GetSize() {
		return t.reject("DeleteIndex", errors.OutOfRangeError{Target: "element", Index: elementIndex, Size: col.GetSize()})
	}
	if err := col.DeleteIndex(elementIndex); err != nil {
		return t.reject("DeleteIndex", err)
	}
	return nil
}

// GetData returns a pointer to the element at elementIndex in the Column at
// columnIndex. Writes through the pointer are visible to later reads.
func (t *Table[T]) GetData(columnIndex int, elementIndex int) (*T, error) {
	col, err := t.locate(columnIndex)
	if err != nil {
		return nil, t.reject("GetData", err)
	}
	v, err := col.At(elementIndex)
	if err != nil {
		return nil, t.reject("GetData", err)
	}
	return v, nil
}

// MaxRows returns the length of the longest Column
func (t *Table[T]) MaxRows() int {
	rows := 0
	for cur := t.head; cur != nil; cur = cur.next {
		if cur.col.GetSize() > rows {
			rows = cur.col.GetSize()
		}
	}
	return rows
}

// Clear removes every Column from this Table
func (t *Table[T]) Clear() {
	for t.head != nil {
		next := t.head.next
		t.head.col.Clear()
		t.head.next = nil
		t.head = next
	}
	t.size = 0
	t.logger.Debug().Str("table", t.name).Msg("Cleared table")
}

// ForEachColumn iterates over the Columns of this Table in order, stopping at the first error
func (t *Table[T]) ForEachColumn(fn func(idx int, col *column.Column[T]) error) error {
	i := 0
	for cur := t.head; cur != nil; cur = cur.next {
		if err := fn(i, cur.col); err != nil {
			return err
		}
		i++
	}
	return nil
}

// locate validates columnIndex and walks to the Column it addresses
func (t *Table[T]) locate(columnIndex int) (*column.Column[T], error) {
	if columnIndex < 0 || columnIndex >= t.size {
		return nil, errors.OutOfRangeError{Target: "column", Index: columnIndex, Size: t.size}
	}
	cur := t.head
	for i := 0; i < columnIndex && cur != nil; i++ {
		cur = cur.next
	}
	if cur == nil {
		return nil, errors.NotFoundError{Target: "column", Index: columnIndex}
	}
	return cur.col, nil
}

// reject logs a failed operation and hands its error back to the caller
func (t *Table[T]) reject(op string, err error) error {
	t.logger.Warn().Err(err).Str("table", t.name).Str("op", op).Msg("Rejected operation")
	return err
}
