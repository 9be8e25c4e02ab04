package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	e := ErrAPI(422, "Cart is empty", nil)
	assert.Equal(t, "Cart is empty", e.Error())
	assert.Equal(t, 422, e.HTTPStatus)

	e = ErrAPI(500, "", nil)
	assert.Equal(t, MsgGeneric, e.Error())
}

func TestErrNetwork(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := ErrNetwork(cause)

	assert.Equal(t, CodeNetwork, e.Code)
	assert.Equal(t, MsgNetwork, e.Error())
	assert.True(t, e.Retryable)
	assert.ErrorIs(t, e, cause)
}

func TestErrStorageUnwraps(t *testing.T) {
	cause := errors.New("keychain locked")
	e := ErrStorage(cause)

	assert.Equal(t, cause.Error(), e.Error())
	assert.ErrorIs(t, e, cause)
}

func TestIsSessionExpired(t *testing.T) {
	assert.True(t, IsSessionExpired(ErrSessionExpired()))
	assert.True(t, IsSessionExpired(fmt.Errorf("wrapped: %w", ErrSessionExpired())))
	assert.False(t, IsSessionExpired(ErrAPI(500, "boom", nil)))
	assert.False(t, IsSessionExpired(errors.New("plain")))
}

func TestAsError(t *testing.T) {
	orig := ErrRefresh(400, "")
	assert.Same(t, orig, AsError(fmt.Errorf("wrapped: %w", orig)))

	plain := errors.New("plain failure")
	converted := AsError(plain)
	assert.Equal(t, CodeAPI, converted.Code)
	assert.Equal(t, "plain failure", converted.Message)
}
