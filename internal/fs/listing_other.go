//go:build !windows

package fs

func omitFromListing(_, _ string) bool {
	return false
}
