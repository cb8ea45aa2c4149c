package engine

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCStringRoundTrip(t *testing.T) {
	ptr, ok := CString("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", GoString(uintptr(unsafe.Pointer(ptr))))
}

func TestCStringEmpty(t *testing.T) {
	ptr, ok := CString("")
	require.True(t, ok)
	assert.Equal(t, byte(0), *ptr)
	assert.Equal(t, "", GoString(uintptr(unsafe.Pointer(ptr))))
}

func TestCStringEmbeddedNul(t *testing.T) {
	ptr, ok := CString("al\x00pha")
	assert.False(t, ok)
	assert.Nil(t, ptr)
}

func TestGoStringZeroPointer(t *testing.T) {
	assert.Equal(t, "", GoString(0))
}
