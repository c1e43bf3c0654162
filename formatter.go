package coltable

import (
	"fmt"
	"strings"
)

// Formatter renders a value of a Column's element type as text for printing
type Formatter[T any] interface {
	ToString(v T) string
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc[T any] func(v T) string

// ToString calls f(v)
func (f FormatterFunc[T]) ToString(v T) string {
	return f(v)
}

// DefaultFormatter renders any value with fmt.Sprint, honouring fmt.Stringer
type DefaultFormatter[T any] struct{}

// ToString produces a string representation of v
func (DefaultFormatter[T]) ToString(v T) string {
	return fmt.Sprint(v)
}

// QuotedStringFormatter renders string values wrapped in double quotes
type QuotedStringFormatter struct{}

// ToString produces a quoted representation of a string value
func (QuotedStringFormatter) ToString(v string) string {
	return fmt.Sprintf("\"%s\"", v)
}

// BytesFormatter renders byte slices as hex, eliding everything after the first few bytes
type BytesFormatter struct{}

// ToString produces a string representation of a byte slice value
func (BytesFormatter) ToString(v []byte) string {
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, b := range v {
		// don't print more than 6 entries
		if i > 5 {
			fmt.Fprintf(&res, "... %d more", len(v)-6)
			break
		}
		fmt.Fprintf(&res, "%02x", b)
	}
	fmt.Fprint(&res, "]")
	return res.String()
}
