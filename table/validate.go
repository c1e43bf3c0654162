package table

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/coltable/errors"
	"github.com/hashicorp/go-multierror"
)

// Validate checks every Column's chain and the Table's own column count,
// reporting all violations at once
func (t *Table[T]) Validate() error {
	var result *multierror.Error
	seen := make(map[*link[T]]bool, t.size)
	count := 0
	for cur := t.head; cur != nil; cur = cur.next {
		if seen[cur] {
			result = multierror.Append(result, errors.InvariantError{Name: t.name, Reason: "column chain contains a cycle"})
			break
		}
		seen[cur] = true
		count++
		if err := cur.col.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if count != t.size {
		result = multierror.Append(result, errors.InvariantError{
			Name:   t.name,
			Reason: fmt.Sprintf("size %d does not match %d reachable columns", t.size, count),
		})
	}
	return result.ErrorOrNil()
}

// Fingerprint hashes the title, Column names and rendered elements of this
// Table, in order. Tables holding equal content share a Fingerprint.
func (t *Table[T]) Fingerprint() uint64 {
	h := xxhash.New()
	sep := []byte{0}
	h.WriteString(t.name)
	h.Write(sep)
	for cur := t.head; cur != nil; cur = cur.next {
		h.WriteString(cur.col.GetName())
		h.Write(sep)
		cur.col.ForEach(func(_ int, v *T) error {
			h.WriteString(t.formatter.ToString(*v))
			h.Write(sep)
			return nil
		})
		// column boundary
		h.Write([]byte{1})
	}
	return h.Sum64()
}
