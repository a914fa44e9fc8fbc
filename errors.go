package planline

import "github.com/planline/planline-go/internal/transport"

// RequestError is the error returned for a non-2xx response on a verb that
// enforces success. See the transport package for field semantics.
type RequestError = transport.RequestError

// DecodeError is the error returned when a success response body could not
// be deserialized into the expected type.
type DecodeError = transport.DecodeError

// Query is an ordered set of query parameters. Values are sent as given;
// pre-encode anything that needs escaping.
type Query = transport.Query

// CallOption adjusts how a single request is performed.
type CallOption = transport.CallOption

// NewQuery creates an empty Query.
func NewQuery() *Query {
	return transport.NewQuery()
}

// LogRequestBody includes the serialized request body in the outgoing debug
// record of a write call. Without it only the body's type name is logged.
func LogRequestBody() CallOption {
	return transport.LogRequestBody()
}
