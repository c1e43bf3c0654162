package table

import (
	"io"
	"os"

	"github.com/go-sif/coltable"
	"github.com/go-sif/coltable/logging"
	"github.com/rs/zerolog"
)

const (
	// DefaultName is the title of a Table created without one
	DefaultName = "Table Name"
	// DefaultCellWidth is the printed width of every cell, unless configured otherwise
	DefaultCellWidth = 10
)

// Options configure a Table. The zero value of every field selects a default.
type Options[T any] struct {
	Name       string                // title printed above the grid
	CellWidth  int                   // width of every printed cell, in terminal columns
	MaxColumns int                   // iff > 0, AddColumn fails once the Table holds this many columns
	Out        io.Writer             // destination for Print (defaults to os.Stdout)
	Logger     *zerolog.Logger       // receives debug and warning events (defaults to a no-op logger)
	Formatter  coltable.Formatter[T] // renders elements for printing (defaults to fmt.Sprint)
}

// CloneOptions makes a copy of an Options
func CloneOptions[T any](opts *Options[T]) *Options[T] {
	return &Options[T]{
		Name:       opts.Name,
		CellWidth:  opts.CellWidth,
		MaxColumns: opts.MaxColumns,
		Out:        opts.Out,
		Logger:     opts.Logger,
		Formatter:  opts.Formatter,
	}
}

// withDefaults returns a copy of opts with every unset field filled in
func withDefaults[T any](opts *Options[T]) *Options[T] {
	if opts == nil {
		opts = &Options[T]{}
	}
	o := CloneOptions(opts)
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.CellWidth == 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	if o.Formatter == nil {
		o.Formatter = coltable.DefaultFormatter[T]{}
	}
	return o
}
