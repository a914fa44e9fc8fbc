package planline

import (
	"context"
	"fmt"

	"github.com/planline/planline-go/internal/transport"
)

// MilestoneService groups the milestone operations of one client.
type MilestoneService struct {
	t *transport.Transport
}

// List returns the milestones of a project.
func (s *MilestoneService) List(ctx context.Context, projectID int) ([]Milestone, error) {
	return transport.Get[[]Milestone](ctx, s.t, fmt.Sprintf("/projects/%d/milestones", projectID), nil)
}

// Create adds a milestone to a project.
func (s *MilestoneService) Create(ctx context.Context, projectID int, m Milestone, opts ...CallOption) (*Milestone, error) {
	created, err := transport.Post[Milestone](ctx, s.t, fmt.Sprintf("/projects/%d/milestones", projectID), nil, m, opts...)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a milestone's mutable fields. A failure status from the
// server is logged but not returned.
func (s *MilestoneService) Update(ctx context.Context, projectID, id int, m Milestone, opts ...CallOption) error {
	return s.t.Put(ctx, fmt.Sprintf("/projects/%d/milestones/%d", projectID, id), nil, m, opts...)
}

// Delete removes a milestone. Tickets assigned to it are left in place.
func (s *MilestoneService) Delete(ctx context.Context, projectID, id int) error {
	return s.t.Delete(ctx, fmt.Sprintf("/projects/%d/milestones/%d", projectID, id), nil)
}
