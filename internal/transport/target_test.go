package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeTargetNoQuery(t *testing.T) {
	assert.Equal(t, "/projects", composeTarget("/projects", nil))
	assert.Equal(t, "/projects", composeTarget("/projects", NewQuery()))
}

func TestComposeTargetSingleParam(t *testing.T) {
	q := NewQuery().Add("status", "open")
	assert.Equal(t, "/tickets?status=open", composeTarget("/tickets", q))
}

func TestComposeTargetPreservesInsertionOrder(t *testing.T) {
	q := NewQuery().Add("z", "1").Add("a", "2").Add("m", "3")
	assert.Equal(t, "/tickets?z=1&a=2&m=3", composeTarget("/tickets", q))

	q = NewQuery().Add("a", "2").Add("z", "1").Add("m", "3")
	assert.Equal(t, "/tickets?a=2&z=1&m=3", composeTarget("/tickets", q))
}

func TestComposeTargetDoesNotEscape(t *testing.T) {
	// Escaping is the caller's job; values travel as given.
	q := NewQuery().Add("q", "hello world")
	assert.Equal(t, "/search?q=hello world", composeTarget("/search", q))
}
