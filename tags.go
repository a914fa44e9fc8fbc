package planline

import (
	"context"
	"fmt"

	"github.com/planline/planline-go/internal/transport"
)

// TagService groups the tag operations of one client.
type TagService struct {
	t *transport.Transport
}

// List returns the tags defined in a project.
func (s *TagService) List(ctx context.Context, projectID int) ([]Tag, error) {
	return transport.Get[[]Tag](ctx, s.t, fmt.Sprintf("/projects/%d/tags", projectID), nil)
}

// Create defines a new tag in a project.
func (s *TagService) Create(ctx context.Context, projectID int, tag Tag, opts ...CallOption) (*Tag, error) {
	created, err := transport.Post[Tag](ctx, s.t, fmt.Sprintf("/projects/%d/tags", projectID), nil, tag, opts...)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a tag by name. The name goes into the path as given;
// pre-encode names that need escaping.
func (s *TagService) Delete(ctx context.Context, projectID int, name string) error {
	return s.t.Delete(ctx, fmt.Sprintf("/projects/%d/tags/%s", projectID, name), nil)
}
