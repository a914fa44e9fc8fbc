package planline

import (
	"context"
	"fmt"

	"github.com/planline/planline-go/internal/transport"
)

// FileService groups the file attachment operations of one client.
type FileService struct {
	t *transport.Transport
}

// List returns metadata for the files attached to a project.
func (s *FileService) List(ctx context.Context, projectID int) ([]FileInfo, error) {
	return transport.Get[[]FileInfo](ctx, s.t, fmt.Sprintf("/projects/%d/files", projectID), nil)
}

// Download returns the raw bytes of an attached file, unmodified.
func (s *FileService) Download(ctx context.Context, projectID, fileID int) ([]byte, error) {
	return s.t.GetRaw(ctx, fmt.Sprintf("/projects/%d/files/%d", projectID, fileID), nil)
}

// Upload attaches a file to a project. The content is sent verbatim with
// the given content type; the file name travels as a query parameter and
// must be pre-encoded if it contains characters that need escaping.
func (s *FileService) Upload(ctx context.Context, projectID int, name string, content []byte, contentType string, opts ...CallOption) (*FileInfo, error) {
	q := transport.NewQuery().Add("name", name)
	info, err := transport.PostRaw[FileInfo](ctx, s.t, fmt.Sprintf("/projects/%d/files", projectID), q, content, contentType, opts...)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Delete removes an attached file.
func (s *FileService) Delete(ctx context.Context, projectID, fileID int) error {
	return s.t.Delete(ctx, fmt.Sprintf("/projects/%d/files/%d", projectID, fileID), nil)
}
