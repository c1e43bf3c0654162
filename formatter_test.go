package coltable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultFormatter(t *testing.T) {
	require.Equal(t, "42", DefaultFormatter[int]{}.ToString(42))
	require.Equal(t, "1.5", DefaultFormatter[float64]{}.ToString(1.5))
	require.Equal(t, "abc", DefaultFormatter[string]{}.ToString("abc"))
	require.Equal(t, "1s", DefaultFormatter[time.Duration]{}.ToString(time.Second))
}

func TestFormatterFunc(t *testing.T) {
	var f Formatter[int] = FormatterFunc[int](func(v int) string {
		if v < 0 {
			return "neg"
		}
		return "pos"
	})
	require.Equal(t, "neg", f.ToString(-3))
	require.Equal(t, "pos", f.ToString(3))
}

func TestQuotedStringFormatter(t *testing.T) {
	require.Equal(t, `"John"`, QuotedStringFormatter{}.ToString("John"))
	require.Equal(t, `""`, QuotedStringFormatter{}.ToString(""))
}

func TestBytesFormatter(t *testing.T) {
	require.Equal(t, "[]", BytesFormatter{}.ToString(nil))
	require.Equal(t, "[0aff]", BytesFormatter{}.ToString([]byte{0x0a, 0xff}))
	require.Equal(t, "[010203040506... 2 more]", BytesFormatter{}.ToString([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
}
