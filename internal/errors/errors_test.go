package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	var usage UsageError
	err := NewUsageError("too many arguments: %d", 2)
	require.True(t, As(err, &usage))
	assert.Equal(t, "too many arguments: 2", err.Error())

	var undefined UndefinedVariableError
	err = NewUndefinedVariableError("PATH")
	require.True(t, As(err, &undefined))
	assert.Equal(t, "PATH", undefined.Name)
	assert.Contains(t, err.Error(), "use -s to continue")

	var invariant InternalInvariantError
	err = NewInternalInvariantError(5, "/x")
	require.True(t, As(err, &invariant))
	assert.False(t, As(err, &usage))
	assert.Contains(t, err.Error(), "invalid classification code 5")
}

func TestWithStackTrace(t *testing.T) {
	assert.Nil(t, WithStackTrace(nil))
	assert.Nil(t, WithStackTraceAndPrefix(nil, "ctx"))

	base := fmt.Errorf("boom")
	wrapped := WithStackTrace(base)
	assert.Equal(t, base, Unwrap(wrapped))
	assert.Contains(t, PrintErrorWithStackTrace(wrapped), "boom")
	assert.Contains(t, PrintErrorWithStackTrace(wrapped), "errors_test.go")

	prefixed := WithStackTraceAndPrefix(base, "running %s", "tidypath")
	assert.Equal(t, "running tidypath: boom", prefixed.Error())
	assert.Equal(t, "", PrintErrorWithStackTrace(nil))
	assert.Equal(t, "plain", PrintErrorWithStackTrace(fmt.Errorf("plain")))
}
