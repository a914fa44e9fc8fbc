// Package transport implements the authenticated HTTP core shared by every
// Planline resource group. It handles request-target composition, credential
// header injection, JSON encoding and decoding, structured request/response
// logging, and interpretation of failure bodies. The package performs one
// network round-trip per call with no retries, timeouts, or caching of its
// own.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const (
	headerAPIKey    = "X-Api-Key"
	headerAPISecret = "X-Api-Secret"
	contentTypeJSON = "application/json"
)

// Transport performs authenticated calls against one Planline origin. The
// credential headers are injected once at construction and attached to every
// request. A Transport is immutable after construction, holds no per-call
// state, and is safe for concurrent use by any number of callers.
type Transport struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	logger     zerolog.Logger
}

// New creates a Transport for the given origin and credential pair. The
// httpClient is used as-is; connection pooling and timeouts are whatever it
// was configured with.
func New(baseURL, apiKey, apiSecret string, httpClient *http.Client, logger zerolog.Logger) *Transport {
	headers := make(http.Header)
	headers.Set(headerAPIKey, apiKey)
	headers.Set(headerAPISecret, apiSecret)
	return &Transport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		headers:    headers,
		logger:     logger,
	}
}

// CallOption adjusts how a single request is performed.
type CallOption func(*callSettings)

type callSettings struct {
	logBody bool
}

// LogRequestBody includes the serialized request body in the outgoing debug
// record. Off by default; without it only the body's type name is logged.
// Only meaningful on verbs that carry a body.
func LogRequestBody() CallOption {
	return func(s *callSettings) {
		s.logBody = true
	}
}

func applyOptions(opts []CallOption) callSettings {
	var s callSettings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// outgoingBody is the request body of one write call together with what the
// logger should say about it.
type outgoingBody struct {
	content     []byte
	contentType string
	typeName    string
	logContent  bool
}

// response is the transient result of one round-trip. It is consumed by the
// logger and the calling verb, then discarded.
type response struct {
	status int
	reason string
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// requireSuccess converts a non-2xx response into a *RequestError carrying
// the status, reason phrase, and the extracted error message when the body
// had one.
func (r *response) requireSuccess() error {
	if r.ok() {
		return nil
	}
	reqErr := &RequestError{StatusCode: r.status, Reason: r.reason}
	if msg, ok := extractAPIError(r.body); ok {
		reqErr.ErrorMessage = msg
	} else {
		reqErr.BodyMalformed = true
	}
	return reqErr
}

// roundTrip performs one network call: build the request with the static
// auth headers, log it, send it, read the body, log the outcome. A non-2xx
// status is not an error here; each verb enforces its own success policy.
// Transport-level faults propagate wrapped, without a response record since
// no response was obtained.
func (t *Transport) roundTrip(ctx context.Context, method, target string, out *outgoingBody) (*response, error) {
	var reader io.Reader
	if out != nil {
		reader = bytes.NewReader(out.content)
	}
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = t.headers.Clone()
	if out != nil && out.contentType != "" {
		req.Header.Set("Content-Type", out.contentType)
	}

	callID := newCallID()
	t.logRequest(callID, method, target, out)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	r := &response{
		status: resp.StatusCode,
		reason: http.StatusText(resp.StatusCode),
		body:   body,
	}
	t.logResponse(callID, method, target, r)
	return r, nil
}

// Get performs a typed GET. Returns a *RequestError on any non-2xx status,
// otherwise decodes the response body into T.
func Get[T any](ctx context.Context, t *Transport, path string, q *Query) (T, error) {
	var zero T
	r, err := t.roundTrip(ctx, http.MethodGet, composeTarget(path, q), nil)
	if err != nil {
		return zero, err
	}
	if err := r.requireSuccess(); err != nil {
		return zero, err
	}
	return decodeJSON[T](r.body)
}

// GetRaw performs a GET and returns the response body unmodified. Returns a
// *RequestError on any non-2xx status.
func (t *Transport) GetRaw(ctx context.Context, path string, q *Query) ([]byte, error) {
	r, err := t.roundTrip(ctx, http.MethodGet, composeTarget(path, q), nil)
	if err != nil {
		return nil, err
	}
	if err := r.requireSuccess(); err != nil {
		return nil, err
	}
	return r.body, nil
}

// Post encodes body as JSON, performs a POST, and decodes the response into
// T. Returns a *RequestError on any non-2xx status.
func Post[T any](ctx context.Context, t *Transport, path string, q *Query, body any, opts ...CallOption) (T, error) {
	var zero T
	content, err := encodeJSON(body)
	if err != nil {
		return zero, err
	}
	settings := applyOptions(opts)
	out := &outgoingBody{
		content:     content,
		contentType: contentTypeJSON,
		typeName:    fmt.Sprintf("%T", body),
		logContent:  settings.logBody,
	}
	r, err := t.roundTrip(ctx, http.MethodPost, composeTarget(path, q), out)
	if err != nil {
		return zero, err
	}
	if err := r.requireSuccess(); err != nil {
		return zero, err
	}
	return decodeJSON[T](r.body)
}

// PostRaw performs a POST with pre-built content passed through verbatim and
// decodes the response into T. Returns a *RequestError on any non-2xx
// status.
func PostRaw[T any](ctx context.Context, t *Transport, path string, q *Query, content []byte, contentType string, opts ...CallOption) (T, error) {
	var zero T
	settings := applyOptions(opts)
	out := &outgoingBody{
		content:     content,
		contentType: contentType,
		typeName:    contentType,
		logContent:  settings.logBody,
	}
	r, err := t.roundTrip(ctx, http.MethodPost, composeTarget(path, q), out)
	if err != nil {
		return zero, err
	}
	if err := r.requireSuccess(); err != nil {
		return zero, err
	}
	return decodeJSON[T](r.body)
}

// PostEmpty performs a bodyless POST, for command-style endpoints, and
// decodes the response into T. Returns a *RequestError on any non-2xx
// status.
func PostEmpty[T any](ctx context.Context, t *Transport, path string, q *Query) (T, error) {
	var zero T
	r, err := t.roundTrip(ctx, http.MethodPost, composeTarget(path, q), nil)
	if err != nil {
		return zero, err
	}
	if err := r.requireSuccess(); err != nil {
		return zero, err
	}
	return decodeJSON[T](r.body)
}

// Put encodes body as JSON and performs a PUT. Unlike the other verbs, Put
// does not return an error for a non-2xx status: the failure is logged at
// error level and the call returns nil. Only encoding and transport-level
// faults are reported.
func (t *Transport) Put(ctx context.Context, path string, q *Query, body any, opts ...CallOption) error {
	content, err := encodeJSON(body)
	if err != nil {
		return err
	}
	settings := applyOptions(opts)
	out := &outgoingBody{
		content:     content,
		contentType: contentTypeJSON,
		typeName:    fmt.Sprintf("%T", body),
		logContent:  settings.logBody,
	}
	_, err = t.roundTrip(ctx, http.MethodPut, composeTarget(path, q), out)
	return err
}

// PutRaw performs a PUT with pre-built content passed through verbatim. Like
// Put, a non-2xx status is logged but not returned as an error.
func (t *Transport) PutRaw(ctx context.Context, path string, q *Query, content []byte, contentType string, opts ...CallOption) error {
	settings := applyOptions(opts)
	out := &outgoingBody{
		content:     content,
		contentType: contentType,
		typeName:    contentType,
		logContent:  settings.logBody,
	}
	_, err := t.roundTrip(ctx, http.MethodPut, composeTarget(path, q), out)
	return err
}

// Delete performs a DELETE. Returns a *RequestError on any non-2xx status;
// there is no decoded result.
func (t *Transport) Delete(ctx context.Context, path string, q *Query) error {
	r, err := t.roundTrip(ctx, http.MethodDelete, composeTarget(path, q), nil)
	if err != nil {
		return err
	}
	return r.requireSuccess()
}
