package planline

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a time.Time that marshals to ISO-8601 (RFC 3339). Optional
// date fields on the API types are *Timestamp so that unset dates are
// omitted from encoded payloads.
type Timestamp struct {
	time.Time
}

// Now returns the current time as a Timestamp.
func Now() *Timestamp {
	return &Timestamp{Time: time.Now().UTC()}
}

// MarshalJSON encodes the timestamp as an RFC 3339 string.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(ts.UTC().Format(time.RFC3339))), nil
}

// UnmarshalJSON decodes an RFC 3339 string or JSON null.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		ts.Time = time.Time{}
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", s, err)
	}
	parsed, err := time.Parse(time.RFC3339, unquoted)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", unquoted, err)
	}
	ts.Time = parsed
	return nil
}

// Project is a Planline project.
type Project struct {
	ID          int        `json:"id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Archived    bool       `json:"archived,omitempty"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp `json:"updated_at,omitempty"`
}

// Milestone is a dated grouping of tickets within a project.
type Milestone struct {
	ID        int        `json:"id,omitempty"`
	ProjectID int        `json:"project_id,omitempty"`
	Title     string     `json:"title,omitempty"`
	DueOn     *Timestamp `json:"due_on,omitempty"`
	Completed bool       `json:"completed,omitempty"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
}

// Ticket is a unit of work within a project, numbered per project.
type Ticket struct {
	Number      int        `json:"number,omitempty"`
	ProjectID   int        `json:"project_id,omitempty"`
	MilestoneID int        `json:"milestone_id,omitempty"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp `json:"updated_at,omitempty"`
}

// Comment is a note attached to a ticket.
type Comment struct {
	ID           int        `json:"id,omitempty"`
	TicketNumber int        `json:"ticket_number,omitempty"`
	Author       string     `json:"author,omitempty"`
	Body         string     `json:"body,omitempty"`
	CreatedAt    *Timestamp `json:"created_at,omitempty"`
}

// Tag is a project-scoped label applicable to tickets.
type Tag struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// FileInfo describes a file attached to a project.
type FileInfo struct {
	ID          int        `json:"id,omitempty"`
	ProjectID   int        `json:"project_id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Size        int64      `json:"size,omitempty"`
	ContentType string     `json:"content_type,omitempty"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
}
