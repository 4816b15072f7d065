package vision

import "context"

// Backend port (interface for a remote vision-language service)
type Backend interface {
	Analyze(ctx context.Context, imageURL, prompt string) (string, error)
}
