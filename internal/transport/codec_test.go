package transport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codecSample struct {
	Name   string   `json:"name,omitempty"`
	Count  int      `json:"count,omitempty"`
	Active bool     `json:"active,omitempty"`
	Notes  []string `json:"notes,omitempty"`
}

func TestEncodeOmitsDefaultValues(t *testing.T) {
	data, err := encodeJSON(codecSample{Name: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x"}`, string(data))

	data, err = encodeJSON(codecSample{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := codecSample{Name: "x", Count: 3}
	data, err := encodeJSON(original)
	require.NoError(t, err)

	// Omitted fields come back as their zero values.
	decoded, err := decodeJSON[codecSample](data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
	assert.False(t, decoded.Active)
	assert.Nil(t, decoded.Notes)
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	decoded, err := decodeJSON[codecSample]([]byte(`{"name":"x","extra":42}`))
	require.NoError(t, err)
	assert.Equal(t, "x", decoded.Name)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := decodeJSON[codecSample]([]byte(`not json`))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Contains(t, decodeErr.Type, "codecSample")
	assert.Error(t, decodeErr.Unwrap())
}

func TestDecodeStructuralMismatch(t *testing.T) {
	_, err := decodeJSON[codecSample]([]byte(`[1,2,3]`))
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}
