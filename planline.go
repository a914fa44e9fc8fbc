// Package planline is a Go client for the Planline project-tracking API.
// It groups operations by resource type — projects, milestones, tickets,
// tags, and files — behind one shared authenticated transport with
// structured request/response logging.
package planline

import (
	"github.com/planline/planline-go/internal/transport"
)

// Client is the entry point to the Planline API. All resource views
// returned by its accessors share the one underlying transport, so a single
// Client can be used concurrently from any number of goroutines.
type Client struct {
	transport *transport.Transport
}

// New creates a Client from the given configuration. The configuration is
// validated first; credential and logger problems are reported here, before
// any call is attempted.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := transport.New(cfg.BaseURL, cfg.APIKey, cfg.APISecret, cfg.HTTPClient, *cfg.Logger)
	return &Client{transport: t}, nil
}

// Projects returns the project operations view.
func (c *Client) Projects() *ProjectService {
	return &ProjectService{t: c.transport}
}

// Milestones returns the milestone operations view.
func (c *Client) Milestones() *MilestoneService {
	return &MilestoneService{t: c.transport}
}

// Tickets returns the ticket operations view.
func (c *Client) Tickets() *TicketService {
	return &TicketService{t: c.transport}
}

// Tags returns the tag operations view.
func (c *Client) Tags() *TagService {
	return &TagService{t: c.transport}
}

// Files returns the file attachment operations view.
func (c *Client) Files() *FileService {
	return &FileService{t: c.transport}
}
