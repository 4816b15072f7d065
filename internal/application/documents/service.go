package documents

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/meddoc/relay/internal/domain/documents"
	"github.com/meddoc/relay/internal/domain/vision"
)

// Prompter supplies the instruction text for a document category.
type Prompter interface {
	For(category domain.Category) string
}

// Service implements the upload / list / analyze use-cases.
// Safe for concurrent use; every field is read-only after construction.
type Service struct {
	Store   domain.ContentStore
	Prompts Prompter

	// Backend per category: prescriptions go through the chat-completion
	// variant, lab requisitions through the multimodal generate variant.
	Prescription   vision.Backend
	LabRequisition vision.Backend
}

// Upload stores the file under the category folder and returns its public URL.
func (s *Service) Upload(ctx context.Context, category domain.Category, filename string, data []byte) (string, error) {
	u, err := s.Store.Upload(ctx, domain.Upload{
		Filename: filename,
		Data:     data,
		Folder:   category.Folder(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if u == "" {
		return "", domain.ErrUploadFailed
	}
	return u, nil
}

// List returns the URLs of every stored document in the category folder.
// An empty folder yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, category domain.Category) ([]string, error) {
	urls, err := s.Store.List(ctx, category.Folder())
	if err != nil {
		return nil, err
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// Analyze runs the stored document at imageURL through the category's vision
// backend and normalizes the response.
//
// The two categories disagree on malformed model output: the prescription path
// fails the request with ErrParseFailed, the lab-requisition path degrades to
// a warning result carrying the raw text. Kept as-is pending a product call.
func (s *Service) Analyze(ctx context.Context, category domain.Category, imageURL string) (*domain.AnalysisResult, error) {
	if err := validateImageURL(imageURL); err != nil {
		return nil, err
	}

	backend := s.Prescription
	if category == domain.CategoryLabRequisition {
		backend = s.LabRequisition
	}

	raw, err := backend.Analyze(ctx, imageURL, s.Prompts.For(category))
	if err != nil {
		return nil, err
	}

	parsed, err := vision.ParseObject(raw)
	if err != nil {
		if category == domain.CategoryLabRequisition {
			return &domain.AnalysisResult{
				Status:      domain.StatusWarning,
				Description: raw,
				Message:     "could not parse model output as JSON",
			}, nil
		}
		return nil, domain.ErrParseFailed
	}

	return &domain.AnalysisResult{
		Status:      domain.StatusSuccess,
		Description: parsed,
	}, nil
}

func validateImageURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("image_url is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid image_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid image_url scheme: %s (allowed: http, https)", u.Scheme)
	}
	return nil
}
