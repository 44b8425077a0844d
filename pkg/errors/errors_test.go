package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	e := New(ErrCodeTransport, "connection refused")
	assert.Equal(t, "[TRANSPORT] connection refused", e.Error())

	wrapped := Wrap(ErrCodeTransport, "send failed", fmt.Errorf("broken pipe"))
	assert.Equal(t, "[TRANSPORT] send failed: broken pipe", wrapped.Error())
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("eof")
	e := Wrap(ErrCodeTransport, "send failed", cause)

	assert.True(t, errors.Is(e, cause))

	var se *StructuredError
	assert.True(t, errors.As(e, &se))
	assert.Equal(t, ErrCodeTransport, se.Code)
}

func TestIsCode(t *testing.T) {
	e := New(ErrCodeValidation, "bad address")
	assert.True(t, IsCode(e, ErrCodeValidation))
	assert.False(t, IsCode(e, ErrCodeTransport))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeValidation))
	assert.False(t, IsCode(nil, ErrCodeValidation))
}

func TestWrapWithContext(t *testing.T) {
	e := WrapWithContext(ErrCodeTransport, "dial failed", fmt.Errorf("timeout"),
		map[string]any{"host": "10.0.0.1"})
	assert.Equal(t, "10.0.0.1", e.Context["host"])
	assert.NotNil(t, e.Cause)
}
