package linked

import (
	"fmt"
	"iter"
	"strings"
)

// render formats the values as `[v1, v2, ..., vn]` using the default format of each value.
func render[T any](values iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for value := range values {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		_, _ = fmt.Fprint(&sb, value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// indexOf returns the position of the first value equal to `target`.
func indexOf[T comparable](values iter.Seq[T], target T) (int, bool /*found*/) {
	index := 0
	for value := range values {
		if value == target {
			return index, true
		}
		index++
	}
	return 0, false
}

// count returns the number of values in the sequence.
func count[T any](values iter.Seq[T]) int {
	n := 0
	for range values {
		n++
	}
	return n
}
