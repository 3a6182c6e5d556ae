package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "not found", err: NotFound("missing"), want: ErrorTypeNotFound},
		{name: "validation", err: Validationf("the parameter %s is not accepted", "foo"), want: ErrorTypeValidation},
		{name: "conflict", err: Conflict("exists"), want: ErrorTypeConflict},
		{name: "external", err: WrapExternal("down", errors.New("dial tcp")), want: ErrorTypeExternal},
		{name: "wrapped with fmt", err: fmt.Errorf("lookup: %w", Conflict("exists")), want: ErrorTypeConflict},
		{name: "plain error", err: errors.New("boom"), want: ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetType(tt.err))
		})
	}
}

func TestClientMessageHidesCause(t *testing.T) {
	err := WrapExternal("the planet data service is unavailable", errors.New("dial tcp 10.0.0.1:443: i/o timeout"))

	assert.Equal(t, "the planet data service is unavailable", ClientMessage(err))
	assert.Contains(t, err.Error(), "i/o timeout")
	assert.Equal(t, internalMessage, ClientMessage(errors.New("secret detail")))
	assert.Equal(t, internalMessage, ClientMessage(WrapInternal("panic recovered", errors.New("nil map"))))
}

func TestIs(t *testing.T) {
	assert.True(t, Is(NotFound("x"), ErrorTypeNotFound))
	assert.False(t, Is(NotFound("x"), ErrorTypeConflict))
	assert.False(t, Is(nil, ErrorTypeInternal))
}
