package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasKluiters/ort/internal/engine"
	"github.com/ThomasKluiters/ort/internal/tensor"
)

func newMock() *engine.Mock {
	mock := engine.NewMock()
	engine.Use(mock.API())
	return mock
}

func TestContextInput(t *testing.T) {
	mock := newMock()
	a := engine.AddTensor(mock, engine.DataTypeFloat, []int64{2}, []float32{1, 2})
	b := engine.AddTensor(mock, engine.DataTypeInt64, []int64{1}, []int64{7})
	ctx := NewContext(mock.NewKernelContext(a, b))

	ref, ok := ctx.Input(0)
	require.True(t, ok)
	assert.Equal(t, a, ref.Value())

	ref, ok = ctx.Input(1)
	require.True(t, ok)
	assert.Equal(t, b, ref.Value())
}

func TestContextInputOutOfRange(t *testing.T) {
	mock := newMock()
	ctx := NewContext(mock.NewKernelContext())

	_, ok := ctx.Input(0)
	assert.False(t, ok)
	_, ok = ctx.Input(5)
	assert.False(t, ok)
}

func TestContextInputForeignFailure(t *testing.T) {
	mock := newMock()
	a := engine.AddTensor(mock, engine.DataTypeFloat, []int64{1}, []float32{1})
	ctx := NewContext(mock.NewKernelContext(a))
	mock.FailWith("KernelContext_GetInput", engine.CodeRuntimeException)

	_, ok := ctx.Input(0)
	assert.False(t, ok)
}

func TestContextOutput(t *testing.T) {
	mock := newMock()
	handle := mock.NewKernelContext()
	ctx := NewContext(handle)

	ref, ok := ctx.Output(0, tensor.Shape{4})
	require.True(t, ok)
	assert.NotEqual(t, engine.Value(0), ref.Value())

	// The buffer lives in the runtime's output slot.
	slot, found := mock.Output(handle, 0)
	require.True(t, found)
	assert.Equal(t, slot, ref.Value())

	elemType, shape, err := ref.TypeAndShape()
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, elemType)
	assert.Equal(t, tensor.Shape{4}, shape)
}

func TestContextOutputForeignFailure(t *testing.T) {
	mock := newMock()
	handle := mock.NewKernelContext()
	ctx := NewContext(handle)
	mock.FailWith("KernelContext_GetOutput", engine.CodeFail)

	_, ok := ctx.Output(0, tensor.Shape{4})
	assert.False(t, ok)

	// No partially-initialized output slot is left behind.
	_, found := mock.Output(handle, 0)
	assert.False(t, found)
}

// scaleKernel multiplies its single input by the "alpha" attribute.
type scaleKernel struct {
	attrs Attributes
}

func (k *scaleKernel) Compute(ctx *Context) error {
	alpha, ok := k.attrs.Float32("alpha")
	if !ok {
		alpha = 1
	}

	in, ok := ctx.Input(0)
	if !ok {
		return assert.AnError
	}
	data, err := tensor.Extract[float32](in)
	if err != nil {
		return err
	}
	inView, _ := data.View()

	out, ok := ctx.Output(0, inView.Shape())
	if !ok {
		return assert.AnError
	}
	outData, err := tensor.Extract[float32](out)
	if err != nil {
		return err
	}
	outView, _ := outData.View()

	for i, x := range inView.Data() {
		outView.Data()[i] = x * alpha
	}
	return nil
}

func TestKernelCompute(t *testing.T) {
	mock := newMock()
	input := engine.AddTensor(mock, engine.DataTypeFloat, []int64{2, 2}, []float32{1, 2, 3, 4})
	info := mock.NewKernelInfo(map[string]any{"alpha": float32(2.5)})
	handle := mock.NewKernelContext(input)

	k := &scaleKernel{attrs: NewAttributes(info)}
	require.NoError(t, k.Compute(NewContext(handle)))

	slot, found := mock.Output(handle, 0)
	require.True(t, found)

	result, err := tensor.Extract[float32](tensor.NewRef(slot))
	require.NoError(t, err)
	view, _ := result.View()
	assert.Equal(t, []float32{2.5, 5, 7.5, 10}, view.Data())
	assert.Equal(t, float32(10), view.At(1, 1))
}
