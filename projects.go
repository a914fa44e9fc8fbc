package planline

import (
	"context"
	"fmt"

	"github.com/planline/planline-go/internal/transport"
)

// ProjectService groups the project operations. All methods are thin
// wrappers over one transport call each.
type ProjectService struct {
	t *transport.Transport
}

// List returns all projects visible to the credentials.
func (s *ProjectService) List(ctx context.Context) ([]Project, error) {
	return transport.Get[[]Project](ctx, s.t, "/projects", nil)
}

// Get returns a single project by ID.
func (s *ProjectService) Get(ctx context.Context, id int) (*Project, error) {
	p, err := transport.Get[Project](ctx, s.t, fmt.Sprintf("/projects/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new project and returns the server's view of it.
func (s *ProjectService) Create(ctx context.Context, p Project, opts ...CallOption) (*Project, error) {
	created, err := transport.Post[Project](ctx, s.t, "/projects", nil, p, opts...)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a project's mutable fields. A failure status from the
// server is logged but not returned; only encoding and transport faults
// surface as errors.
func (s *ProjectService) Update(ctx context.Context, id int, p Project, opts ...CallOption) error {
	return s.t.Put(ctx, fmt.Sprintf("/projects/%d", id), nil, p, opts...)
}

// Archive marks a project archived and returns its updated state.
func (s *ProjectService) Archive(ctx context.Context, id int) (*Project, error) {
	p, err := transport.PostEmpty[Project](ctx, s.t, fmt.Sprintf("/projects/%d/archive", id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a project permanently.
func (s *ProjectService) Delete(ctx context.Context, id int) error {
	return s.t.Delete(ctx, fmt.Sprintf("/projects/%d", id), nil)
}
