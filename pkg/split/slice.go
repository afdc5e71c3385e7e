package split

import "fmt"

// Slice partitions source at the given split points. The final boundary
// is always len(source), so the last section runs to the end of the
// document. An empty point sequence means the document has no headings:
// the result is a single section spanning the whole source, never an
// empty result.
//
// Points must be non-decreasing, in bounds, and start at 0 when
// non-empty. Violations are programming-contract errors from the
// extractor, not recoverable conditions: Slice panics rather than
// mis-slicing silently. Returned slices are views into source.
func Slice(source []byte, points []int) [][]byte {
	if len(points) == 0 {
		return [][]byte{source[0:len(source)]}
	}

	validatePoints(points, len(source))

	sections := make([][]byte, 0, len(points))
	for i, start := range points {
		end := len(source)
		if i+1 < len(points) {
			end = points[i+1]
		}
		sections = append(sections, source[start:end])
	}

	return sections
}

// validatePoints rejects malformed split points. Callers within the
// package construct points by document-order traversal, so a violation
// here is a bug, never bad user input.
func validatePoints(points []int, length int) {
	if points[0] != 0 {
		panic(fmt.Sprintf("split: first point is %d, not 0", points[0]))
	}
	prev := 0
	for _, p := range points {
		if p < prev {
			panic(fmt.Sprintf("split: points out of order: %d after %d", p, prev))
		}
		if p > length {
			panic(fmt.Sprintf("split: point %d beyond source length %d", p, length))
		}
		prev = p
	}
}
