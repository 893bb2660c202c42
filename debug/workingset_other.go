//go:build !windows

package debug

// workingSet is unavailable outside Windows; the stats line logs zero.
func workingSet() (uint64, error) {
	return 0, nil
}
