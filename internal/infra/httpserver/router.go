package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appdocs "github.com/meddoc/relay/internal/application/documents"
	domain "github.com/meddoc/relay/internal/domain/documents"
	"github.com/meddoc/relay/internal/middleware"
)

// uploads larger than this are rejected while parsing the multipart form
const maxUploadBytes = 32 << 20

type Router struct {
	docsSvc *appdocs.Service
}

func NewRouter(docsSvc *appdocs.Service, health map[string]middleware.HealthChecker) http.Handler {
	r := &Router{docsSvc: docsSvc}
	mux := chi.NewRouter()

	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	// every client is a browser app somewhere else, so allow everything
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	mux.Get("/health", middleware.HealthHandler(health))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/upload-prescription/", r.wrap(r.handleUpload(domain.CategoryPrescription)))
	mux.Get("/fetch-prescriptions/", r.wrap(r.handleList(domain.CategoryPrescription)))
	mux.Post("/analyze-prescription/", r.wrap(r.handleAnalyze(domain.CategoryPrescription)))

	mux.Post("/upload-lab-requisition/", r.wrap(r.handleUpload(domain.CategoryLabRequisition)))
	mux.Get("/fetch-lab-requisitions/", r.wrap(r.handleList(domain.CategoryLabRequisition)))
	mux.Post("/analyze-lab-requisition/", r.wrap(r.handleAnalyze(domain.CategoryLabRequisition)))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks errors caused by the request itself, not a collaborator.
type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var br badRequest
			if errors.As(err, &br) {
				http.Error(w, br.Error(), http.StatusBadRequest)
				return
			}
			// taxonomy errors (upload/fetch/parse/backend failures) all
			// surface as a server error with a descriptive message
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /upload-{category}/
// multipart body with a "file" field
func (r *Router) handleUpload(category domain.Category) handlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
			return badRequest{fmt.Errorf("invalid multipart form: %w", err)}
		}
		file, header, err := req.FormFile("file")
		if err != nil {
			return badRequest{fmt.Errorf("file field is required: %w", err)}
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return err
		}

		url, err := r.docsSvc.Upload(req.Context(), category, header.Filename, data)
		if err != nil {
			return err
		}

		return writeJSON(w, map[string]string{
			"message": uploadMessage(category),
			"url":     url,
		})
	}
}

// GET /fetch-{category}s/
func (r *Router) handleList(category domain.Category) handlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		urls, err := r.docsSvc.List(req.Context(), category)
		if err != nil {
			return err
		}
		return writeJSON(w, map[string][]string{"images": urls})
	}
}

// POST /analyze-{category}/
// Body: {"image_url": "<url>"}
func (r *Router) handleAnalyze(category domain.Category) handlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		var body struct {
			ImageURL string `json:"image_url"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return badRequest{fmt.Errorf("invalid request body: %w", err)}
		}
		if body.ImageURL == "" {
			return badRequest{fmt.Errorf("image_url is required")}
		}

		middleware.IncrementAnalyses()
		result, err := r.docsSvc.Analyze(req.Context(), category, body.ImageURL)
		if err != nil {
			middleware.IncrementAnalysesFailed()
			return err
		}
		return writeJSON(w, result)
	}
}

func uploadMessage(category domain.Category) string {
	if category == domain.CategoryLabRequisition {
		return "Lab requisition uploaded successfully"
	}
	return "Prescription uploaded successfully"
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}
