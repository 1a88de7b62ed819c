//go:build windows

package fs

import "syscall"

const (
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// omitFromListing drops protected system junctions such as
// "Application Data" that cannot be entered anyway.
func omitFromListing(fullPath, _ string) bool {
	ptr, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}
