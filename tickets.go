package planline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/planline/planline-go/internal/transport"
)

// TicketService groups the ticket operations of one client.
type TicketService struct {
	t *transport.Transport
}

// TicketFilter narrows List results. Zero-valued fields are not sent.
// Values go on the wire as given; pre-encode anything that needs escaping.
type TicketFilter struct {
	Status      string
	Assignee    string
	Tag         string
	MilestoneID int
}

func (f TicketFilter) query() *transport.Query {
	q := transport.NewQuery()
	if f.Status != "" {
		q.Add("status", f.Status)
	}
	if f.Assignee != "" {
		q.Add("assignee", f.Assignee)
	}
	if f.Tag != "" {
		q.Add("tag", f.Tag)
	}
	if f.MilestoneID != 0 {
		q.Add("milestone_id", strconv.Itoa(f.MilestoneID))
	}
	if q.Len() == 0 {
		return nil
	}
	return q
}

// List returns the tickets of a project, optionally narrowed by filter.
func (s *TicketService) List(ctx context.Context, projectID int, filter TicketFilter) ([]Ticket, error) {
	return transport.Get[[]Ticket](ctx, s.t, fmt.Sprintf("/projects/%d/tickets", projectID), filter.query())
}

// Get returns a single ticket by its per-project number.
func (s *TicketService) Get(ctx context.Context, projectID, number int) (*Ticket, error) {
	tk, err := transport.Get[Ticket](ctx, s.t, fmt.Sprintf("/projects/%d/tickets/%d", projectID, number), nil)
	if err != nil {
		return nil, err
	}
	return &tk, nil
}

// Create opens a new ticket and returns the server's view of it, including
// the assigned number.
func (s *TicketService) Create(ctx context.Context, projectID int, tk Ticket, opts ...CallOption) (*Ticket, error) {
	created, err := transport.Post[Ticket](ctx, s.t, fmt.Sprintf("/projects/%d/tickets", projectID), nil, tk, opts...)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a ticket's mutable fields. A failure status from the
// server is logged but not returned.
func (s *TicketService) Update(ctx context.Context, projectID, number int, tk Ticket, opts ...CallOption) error {
	return s.t.Put(ctx, fmt.Sprintf("/projects/%d/tickets/%d", projectID, number), nil, tk, opts...)
}

// Comment attaches a comment to a ticket.
func (s *TicketService) Comment(ctx context.Context, projectID, number int, c Comment, opts ...CallOption) (*Comment, error) {
	created, err := transport.Post[Comment](ctx, s.t, fmt.Sprintf("/projects/%d/tickets/%d/comments", projectID, number), nil, c, opts...)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Close closes a ticket and returns its updated state.
func (s *TicketService) Close(ctx context.Context, projectID, number int) (*Ticket, error) {
	closed, err := transport.PostEmpty[Ticket](ctx, s.t, fmt.Sprintf("/projects/%d/tickets/%d/close", projectID, number), nil)
	if err != nil {
		return nil, err
	}
	return &closed, nil
}

// Delete removes a ticket permanently.
func (s *TicketService) Delete(ctx context.Context, projectID, number int) error {
	return s.t.Delete(ctx, fmt.Sprintf("/projects/%d/tickets/%d", projectID, number), nil)
}
