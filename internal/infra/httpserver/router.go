package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	appanalysis "github.com/satyacheck-ai/satyacheck/internal/application/analysis"
	domain "github.com/satyacheck-ai/satyacheck/internal/domain/analysis"
	"github.com/satyacheck-ai/satyacheck/internal/middleware"
)

type Router struct {
	svc      *appanalysis.Service
	maxText  int
	maxImage int64
}

func NewRouter(svc *appanalysis.Service, maxText int, maxImage int64, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{svc: svc, maxText: maxText, maxImage: maxImage}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze/text", r.wrap(r.handleAnalyzeText))
		rt.Post("/analyze/url", r.wrap(r.handleAnalyzeURL))
		rt.Post("/analyze/image", r.wrap(r.handleAnalyzeImage))
		rt.Get("/examples", r.wrap(r.handleExamples))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequestError marks client-side input problems
type badRequestError struct {
	cause error
}

func (e *badRequestError) Error() string { return e.cause.Error() }

func badRequest(format string, args ...any) error {
	return &badRequestError{cause: fmt.Errorf(format, args...)}
}

// wrap converts handler errors into user-visible JSON messages. Nothing
// escapes uncaught: a failed fetch shows the raw cause, a failed analysis
// shows the prefixed message, anything else is a 500.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var badReq *badRequestError
		var fetchErr *domain.FetchError
		var failedErr *domain.FailedError
		switch {
		case errors.As(err, &badReq):
			writeError(w, http.StatusBadRequest, badReq.Error())
		case errors.As(err, &fetchErr):
			middleware.IncrementFetchFailures()
			writeError(w, http.StatusUnprocessableEntity, fetchErr.Error())
		case errors.As(err, &failedErr):
			middleware.IncrementAnalysesFailed()
			writeError(w, http.StatusBadGateway, failedErr.Message)
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// POST /v1/analyze/text
// Body: {"text": "<content>"}
func (r *Router) handleAnalyzeText(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	body.Text = middleware.SanitizeString(body.Text)
	if err := middleware.ValidateText(body.Text, r.maxText); err != nil {
		return &badRequestError{cause: err}
	}

	middleware.IncrementAnalyses()
	report, err := r.svc.Analyze(req.Context(), domain.Request{
		Kind: domain.KindText,
		Body: body.Text,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, report)
}

// POST /v1/analyze/url
// Body: {"url": "<http(s) URL>"}
func (r *Router) handleAnalyzeURL(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	if err := middleware.ValidateURL(body.URL); err != nil {
		return &badRequestError{cause: err}
	}

	middleware.IncrementAnalyses()
	report, err := r.svc.Analyze(req.Context(), domain.Request{
		Kind: domain.KindURL,
		Body: body.URL,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, report)
}

// POST /v1/analyze/image
// Multipart form: "image" file field, optional "instruction" text field
func (r *Router) handleAnalyzeImage(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxImage)
	if err := req.ParseMultipartForm(r.maxImage); err != nil {
		return badRequest("invalid multipart form: %v", err)
	}

	file, header, err := req.FormFile("image")
	if err != nil {
		return badRequest("image file is required: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return badRequest("failed to read image: %v", err)
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	if err := middleware.ValidateImageType(mime); err != nil {
		return &badRequestError{cause: err}
	}

	middleware.IncrementAnalyses()
	report, err := r.svc.Analyze(req.Context(), domain.Request{
		Kind:        domain.KindImage,
		Instruction: middleware.SanitizeString(req.FormValue("instruction")),
		ImageData:   data,
		ImageMIME:   mime,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, report)
}

// GET /v1/examples
func (r *Router) handleExamples(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, Examples())
}
