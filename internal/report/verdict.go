package report

// ShouldFail reports whether a finding count breaks the threshold. The
// comparison is strict, so a count exactly equal to the threshold passes.
func ShouldFail(count, threshold int) bool {
	return count > threshold
}
