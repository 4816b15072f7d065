package documents

import (
	"context"
	"errors"
	"reflect"
	"testing"

	domain "github.com/meddoc/relay/internal/domain/documents"
)

type fakeStore struct {
	uploads []domain.Upload
	url     string
	listed  []string
	listErr error
}

func (f *fakeStore) Upload(ctx context.Context, up domain.Upload) (string, error) {
	f.uploads = append(f.uploads, up)
	return f.url, nil
}

func (f *fakeStore) List(ctx context.Context, folder string) ([]string, error) {
	return f.listed, f.listErr
}

type fakeBackend struct {
	gotURL    string
	gotPrompt string
	response  string
	err       error
}

func (f *fakeBackend) Analyze(ctx context.Context, imageURL, prompt string) (string, error) {
	f.gotURL = imageURL
	f.gotPrompt = prompt
	return f.response, f.err
}

type fakePrompts struct{}

func (fakePrompts) For(c domain.Category) string { return "prompt for " + string(c) }

func newService(store *fakeStore, rx, lab *fakeBackend) *Service {
	return &Service{
		Store:          store,
		Prompts:        fakePrompts{},
		Prescription:   rx,
		LabRequisition: lab,
	}
}

func TestUploadRoutesToCategoryFolder(t *testing.T) {
	store := &fakeStore{url: "https://cdn.example/prescriptions/x.png"}
	svc := newService(store, &fakeBackend{}, &fakeBackend{})

	url, err := svc.Upload(context.Background(), domain.CategoryPrescription, "scan.png", []byte("png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != store.url {
		t.Fatalf("got url %q, want %q", url, store.url)
	}
	if len(store.uploads) != 1 || store.uploads[0].Folder != "prescriptions" {
		t.Fatalf("upload not routed to prescriptions folder: %+v", store.uploads)
	}
}

func TestUploadFailsWithoutURL(t *testing.T) {
	svc := newService(&fakeStore{url: ""}, &fakeBackend{}, &fakeBackend{})

	_, err := svc.Upload(context.Background(), domain.CategoryLabRequisition, "form.pdf", []byte("pdf"))
	if !errors.Is(err, domain.ErrUploadFailed) {
		t.Fatalf("got %v, want ErrUploadFailed", err)
	}
}

func TestListEmptyFolder(t *testing.T) {
	svc := newService(&fakeStore{listed: nil}, &fakeBackend{}, &fakeBackend{})

	urls, err := svc.List(context.Background(), domain.CategoryPrescription)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if urls == nil || len(urls) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", urls)
	}
}

func TestAnalyzeDispatchesByCategory(t *testing.T) {
	rx := &fakeBackend{response: `{"medications":[]}`}
	lab := &fakeBackend{response: `{"patient":{}}`}
	svc := newService(&fakeStore{}, rx, lab)

	if _, err := svc.Analyze(context.Background(), domain.CategoryLabRequisition, "https://cdn.example/a.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lab.gotURL == "" {
		t.Fatal("lab-requisition analyze did not reach the multimodal backend")
	}
	if rx.gotURL != "" {
		t.Fatal("lab-requisition analyze reached the chat-completion backend")
	}
	if lab.gotPrompt != "prompt for lab-requisition" {
		t.Fatalf("wrong prompt dispatched: %q", lab.gotPrompt)
	}
}

func TestAnalyzeSuccessParsesFencedJSON(t *testing.T) {
	rx := &fakeBackend{response: "```json\n{\"a\":1}\n```"}
	svc := newService(&fakeStore{}, rx, &fakeBackend{})

	res, err := svc.Analyze(context.Background(), domain.CategoryPrescription, "https://cdn.example/a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.StatusSuccess {
		t.Fatalf("got status %q, want success", res.Status)
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(res.Description, want) {
		t.Fatalf("got description %#v, want %#v", res.Description, want)
	}
}

func TestAnalyzePrescriptionFailsOnInvalidJSON(t *testing.T) {
	rx := &fakeBackend{response: "this is not json"}
	svc := newService(&fakeStore{}, rx, &fakeBackend{})

	_, err := svc.Analyze(context.Background(), domain.CategoryPrescription, "https://cdn.example/a.png")
	if !errors.Is(err, domain.ErrParseFailed) {
		t.Fatalf("got %v, want ErrParseFailed", err)
	}
}

func TestAnalyzeLabRequisitionDegradesOnInvalidJSON(t *testing.T) {
	lab := &fakeBackend{response: "not json either"}
	svc := newService(&fakeStore{}, &fakeBackend{}, lab)

	res, err := svc.Analyze(context.Background(), domain.CategoryLabRequisition, "https://cdn.example/a.png")
	if err != nil {
		t.Fatalf("lab path must not fail on parse errors, got: %v", err)
	}
	if res.Status != domain.StatusWarning {
		t.Fatalf("got status %q, want warning", res.Status)
	}
	if res.Description != "not json either" {
		t.Fatalf("warning must carry raw text, got %#v", res.Description)
	}
	if res.Message == "" {
		t.Fatal("warning must carry a message")
	}
}

func TestAnalyzeBackendErrorPropagates(t *testing.T) {
	backendErr := errors.New("boom")
	svc := newService(&fakeStore{}, &fakeBackend{err: backendErr}, &fakeBackend{})

	_, err := svc.Analyze(context.Background(), domain.CategoryPrescription, "https://cdn.example/a.png")
	if !errors.Is(err, backendErr) {
		t.Fatalf("got %v, want backend error", err)
	}
}

func TestAnalyzeRejectsBadScheme(t *testing.T) {
	svc := newService(&fakeStore{}, &fakeBackend{}, &fakeBackend{})

	if _, err := svc.Analyze(context.Background(), domain.CategoryPrescription, "file:///etc/passwd"); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}
