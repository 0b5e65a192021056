//go:build lexicographic_nofastpath

package lexicographic

// The raw memory fast path is compiled out. Compare walks every sequence
// element by element.
const fastPathEnabled = false

// FastPathEnabled reports whether Compare may use the raw memory fast path.
func FastPathEnabled() bool {
	return fastPathEnabled
}
