package documents

import "context"

// ContentStore port (interface for the external media store)
type ContentStore interface {
	// Upload stores the payload and returns a publicly retrievable URL.
	Upload(ctx context.Context, up Upload) (string, error)
	// List returns the URLs of every object stored under folder.
	List(ctx context.Context, folder string) ([]string, error)
}
