package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAPIError(t *testing.T) {
	msg, ok := extractAPIError([]byte(`{"error":"not found"}`))
	assert.True(t, ok)
	assert.Equal(t, "not found", msg)
}

func TestExtractAPIErrorNotJSON(t *testing.T) {
	msg, ok := extractAPIError([]byte(`not json`))
	assert.False(t, ok)
	assert.Contains(t, msg, "not valid JSON")
}

func TestExtractAPIErrorEmptyBody(t *testing.T) {
	msg, ok := extractAPIError(nil)
	assert.False(t, ok)
	assert.Equal(t, "empty response body", msg)
}

func TestExtractAPIErrorMissingField(t *testing.T) {
	msg, ok := extractAPIError([]byte(`{"message":"oops"}`))
	assert.False(t, ok)
	assert.Contains(t, msg, "no error field")
}

func TestExtractAPIErrorNonStringField(t *testing.T) {
	msg, ok := extractAPIError([]byte(`{"error":42}`))
	assert.False(t, ok)
	assert.Contains(t, msg, "not a string")
}

func TestExtractAPIErrorNonObjectBody(t *testing.T) {
	msg, ok := extractAPIError([]byte(`["error"]`))
	assert.False(t, ok)
	assert.Contains(t, msg, "no error field")
}
