package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatusSuccess(t *testing.T) {
	Use(NewMock().API())
	assert.NoError(t, CheckStatus("GetTensorMutableData", 0))
}

func TestCheckStatusFailure(t *testing.T) {
	mock := NewMock()
	Use(mock.API())

	var out uint64
	st := Get().GetStringTensorDataLength(0, &out) // unknown handle fails too
	require.NotEqual(t, Status(0), st)

	err := CheckStatus("GetStringTensorDataLength", st)
	require.Error(t, err)

	callErr, ok := err.(*CallError)
	require.True(t, ok)
	assert.Equal(t, "GetStringTensorDataLength", callErr.Call)
	assert.Equal(t, CodeInvalidArgument, callErr.Code)
	assert.Contains(t, callErr.Error(), "GetStringTensorDataLength")

	// The status object was released during translation.
	assert.Equal(t, CodeOK, Get().GetErrorCode(st))
}

func TestCheckStatusScriptedFailure(t *testing.T) {
	mock := NewMock()
	Use(mock.API())
	mock.FailWith("KernelContext_GetInput", CodeFail)

	var v Value
	st := Get().KernelContextGetInput(0, 0, &v)
	err := CheckStatus("KernelContext_GetInput", st)
	require.Error(t, err)
	assert.Equal(t, CodeFail, err.(*CallError).Code)
}

func TestMustNonNull(t *testing.T) {
	assert.Panics(t, func() { MustNonNull("GetTensorMutableData", 0) })
	assert.NotPanics(t, func() { MustNonNull("GetTensorMutableData", 1) })
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "invalid argument", CodeInvalidArgument.String())
	assert.Equal(t, "ok", CodeOK.String())
	assert.Equal(t, "unknown(99)", ErrorCode(99).String())
}
