package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasKluiters/ort/internal/engine"
)

func TestAttributesFloat32(t *testing.T) {
	mock := newMock()
	attrs := NewAttributes(mock.NewKernelInfo(map[string]any{
		"alpha": float32(0.5),
		"beta":  int64(3),
	}))

	v, ok := attrs.Float32("alpha")
	require.True(t, ok)
	assert.Equal(t, float32(0.5), v)

	// Absent and wrong-type lookups are indistinguishable.
	v, ok = attrs.Float32("missing")
	assert.False(t, ok)
	assert.Equal(t, float32(0), v)

	v, ok = attrs.Float32("beta")
	assert.False(t, ok)
	assert.Equal(t, float32(0), v)
}

func TestAttributesInt64(t *testing.T) {
	mock := newMock()
	attrs := NewAttributes(mock.NewKernelInfo(map[string]any{
		"axis":  int64(-1),
		"alpha": float32(1),
	}))

	v, ok := attrs.Int64("axis")
	require.True(t, ok)
	assert.Equal(t, int64(-1), v)

	_, ok = attrs.Int64("missing")
	assert.False(t, ok)
	_, ok = attrs.Int64("alpha")
	assert.False(t, ok)
}

func TestAttributesString(t *testing.T) {
	mock := newMock()
	attrs := NewAttributes(mock.NewKernelInfo(map[string]any{
		"mode":  "linear",
		"empty": "",
		"axis":  int64(0),
	}))

	v, ok := attrs.String("mode")
	require.True(t, ok)
	assert.Equal(t, "linear", v)

	v, ok = attrs.String("empty")
	require.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = attrs.String("missing")
	assert.False(t, ok)
	_, ok = attrs.String("axis")
	assert.False(t, ok)
}

func TestAttributesEmbeddedNulName(t *testing.T) {
	mock := newMock()
	attrs := NewAttributes(mock.NewKernelInfo(map[string]any{"alpha": float32(1)}))

	_, ok := attrs.Float32("al\x00pha")
	assert.False(t, ok)
	_, ok = attrs.Int64("al\x00pha")
	assert.False(t, ok)
	_, ok = attrs.String("al\x00pha")
	assert.False(t, ok)
}

func TestAttributesForeignFailure(t *testing.T) {
	mock := newMock()
	attrs := NewAttributes(mock.NewKernelInfo(map[string]any{"alpha": float32(1)}))
	mock.FailWith("KernelInfoGetAttribute_float", engine.CodeFail)

	_, ok := attrs.Float32("alpha")
	assert.False(t, ok)

	mock.Succeed("KernelInfoGetAttribute_float")
	v, ok := attrs.Float32("alpha")
	require.True(t, ok)
	assert.Equal(t, float32(1), v)
}
