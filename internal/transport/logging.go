package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// logEvent identifies a class of log records as a stable (id, label) pair.
// The same verb always maps to the same identity across calls, so log
// consumers can filter and aggregate by event_id.
type logEvent struct {
	ID   int
	Name string
}

// requestEvents maps each verb to the identity of its outgoing-request
// record. Built once at process start, never mutated.
var requestEvents = map[string]logEvent{
	http.MethodGet:    {ID: 2001, Name: "http_get"},
	http.MethodPost:   {ID: 2002, Name: "http_post"},
	http.MethodPut:    {ID: 2003, Name: "http_put"},
	http.MethodDelete: {ID: 2004, Name: "http_delete"},
}

// logRequest emits the before-send record for one call. For write verbs,
// out carries either the serialized content (when the caller asked for body
// logging) or just the content's declared type name.
func (t *Transport) logRequest(callID, method, target string, out *outgoingBody) {
	ev := requestEvents[method]
	e := t.logger.Debug().
		Int("event_id", ev.ID).
		Str("event", ev.Name).
		Str("call_id", callID).
		Str("method", method).
		Str("target", target)
	if out != nil {
		if out.logContent {
			e = e.Bytes("body", out.content)
		} else {
			e = e.Str("body_type", out.typeName)
		}
	}
	e.Msg("sending request")
}

// logResponse emits the after-completion record. The event identity derives
// from the status line rather than the verb: event_id is the numeric status
// code and the label is its reason phrase. Failures log at error level and
// carry the extractor's result, keeping the distinction between an
// API-reported message and an unreadable failure body.
func (t *Transport) logResponse(callID, method, target string, r *response) {
	var e *zerolog.Event
	if r.ok() {
		e = t.logger.Debug()
	} else {
		e = t.logger.Error()
	}
	e = e.Int("event_id", r.status).
		Str("event", r.reason).
		Str("call_id", callID).
		Str("method", method).
		Str("target", target).
		Int("status", r.status).
		Str("reason", r.reason)
	if r.ok() {
		e.Msg("request completed")
		return
	}
	if msg, ok := extractAPIError(r.body); ok {
		e = e.Str("api_error", msg)
	} else {
		e = e.Str("body_error", msg)
	}
	e.Msg("request failed")
}

// newCallID generates a unique identifier tying the request and response
// records of one call together. Falls back to a timestamp-based ID if UUID
// generation fails.
func newCallID() string {
	u, err := uuid.NewRandom()
	if err == nil {
		return u.String()
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
