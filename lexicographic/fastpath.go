//go:build !lexicographic_nofastpath

package lexicographic

const fastPathEnabled = true

// FastPathEnabled reports whether Compare may use the raw memory fast path.
func FastPathEnabled() bool {
	return fastPathEnabled
}
