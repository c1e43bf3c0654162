// Package coltable contains the shared components of coltable, a generic column-oriented
// table container. A Table is an ordered chain of named Columns, and each Column is a singly
// linked chain of values of one element type. This root package defines the Formatter
// capability used to render elements as text; the column and table packages hold the
// containers themselves.
package coltable
