package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	err := Errorf(KindInvalidArgument, "latitude %v is outside [-90, 90]", 123.4)

	assert.Equal(t, "invalid_argument: latitude 123.4 is outside [-90, 90]", err.Error())
	assert.Equal(t, KindInvalidArgument, KindOf(err))
	assert.Nil(t, err.Unwrap())
}

func TestWrapError(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(KindUpstream, cause, "nws: request failed")

	assert.Equal(t, "upstream_error: nws: request failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUpstream, KindOf(err))
}

func TestKindOfWrappedDeeper(t *testing.T) {
	inner := Errorf(KindParse, "unexpected shape")
	outer := fmt.Errorf("handling request: %w", inner)

	assert.Equal(t, KindParse, KindOf(outer))
}

func TestKindOfNonDomainError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}

func TestErrorMessageIsSelfSufficient(t *testing.T) {
	// An operator should be able to diagnose from the message alone.
	err := WrapError(KindUpstream, errors.New("status 503: upstream maintenance"), "nws: fetch alerts for CA")
	require.Contains(t, err.Error(), "CA")
	require.Contains(t, err.Error(), "503")
}
