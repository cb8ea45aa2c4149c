package engine

import (
	"strings"
	"unsafe"
)

// CString returns a pointer to a NUL-terminated copy of s, suitable for
// passing across the foreign boundary. ok is false if s contains an embedded
// NUL, which has no C string representation.
func CString(s string) (ptr *byte, ok bool) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, false
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0], true
}

// GoString copies the NUL-terminated C string at p into a Go string.
// A zero pointer yields an empty string.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
