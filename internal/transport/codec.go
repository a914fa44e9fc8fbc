package transport

import (
	"fmt"

	jsonitor "github.com/json-iterator/go"
)

var json = jsonitor.ConfigCompatibleWithStandardLibrary

// encodeJSON serializes a request body. Fields at their zero value are
// omitted through the omitempty tags the API types carry; timestamps render
// as ISO-8601 through their own marshalers. The configuration is fixed for
// the whole process.
func encodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, nil
}

// decodeJSON parses a response body into T. Unknown fields are ignored.
// Returns a *DecodeError when the body is not valid JSON or does not match
// the shape of T.
func decodeJSON[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &DecodeError{Type: fmt.Sprintf("%T", v), Err: err}
	}
	return v, nil
}
