package transport

import "strings"

// Query is an ordered list of query parameters. Parameters appear in the
// composed request target in the order they were added. Keys and values are
// sent exactly as given; callers must pre-encode anything that needs
// escaping.
type Query struct {
	params []param
}

type param struct {
	key   string
	value string
}

// NewQuery creates an empty Query.
func NewQuery() *Query {
	return &Query{}
}

// Add appends a parameter and returns the Query for chaining. Keys are
// expected to be unique within one request.
func (q *Query) Add(key, value string) *Query {
	q.params = append(q.params, param{key: key, value: value})
	return q
}

// Len returns the number of parameters added so far.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

// composeTarget joins a path with its query parameters into the request
// target. An empty or nil query leaves the path unchanged.
func composeTarget(path string, q *Query) string {
	if q.Len() == 0 {
		return path
	}
	var sb strings.Builder
	sb.WriteString(path)
	sb.WriteByte('?')
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.key)
		sb.WriteByte('=')
		sb.WriteString(p.value)
	}
	return sb.String()
}
