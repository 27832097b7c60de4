// Package server exposes the render engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/datadash/lowerthird/internal/apperr"
	"github.com/datadash/lowerthird/internal/engine"
	"github.com/datadash/lowerthird/internal/palette"
)

const maxTitleLen = 100

// Generator renders one clip. Satisfied by *engine.Engine.
type Generator interface {
	Generate(ctx context.Context, req engine.Request) (string, error)
}

// Server routes HTTP requests to the generator.
type Server struct {
	gen    Generator
	logger *log.Logger
	router chi.Router
}

// New wires the routes.
func New(gen Generator, logger *log.Logger) *Server {
	s := &Server{gen: gen, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/create-lowerthird", s.handleCreate)
	r.Get("/styles", s.handleStyles)
	r.Get("/health", s.handleHealth)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type createRequest struct {
	MainTitle  string   `json:"main_title"`
	Subtitle   string   `json:"subtitle"`
	OutputName string   `json:"output_name"`
	Duration   *float64 `json:"duration"`
	Style      string   `json:"style"`
	BadgeURL   string   `json:"badge_url"`
}

type createResponse struct {
	Status     string       `json:"status"`
	Video      string       `json:"video"`
	Parameters createParams `json:"parameters"`
}

type createParams struct {
	MainTitle  string  `json:"main_title"`
	Subtitle   string  `json:"subtitle"`
	OutputName string  `json:"output_name"`
	Duration   float64 `json:"duration"`
	Style      string  `json:"style"`
	BadgeURL   string  `json:"badge_url,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	// An empty body is rejected, not defaulted; decoding it yields io.EOF.
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, apperr.New(apperr.CodeInvalidInput, "request body must be a JSON object"))
		return
	}

	req := engine.Request{
		MainTitle:  defaultStr(body.MainTitle, "DataDash"),
		Subtitle:   defaultStr(body.Subtitle, "Fortinet Community Insights"),
		OutputName: defaultStr(body.OutputName, "lowerthird"),
		Style:      defaultStr(body.Style, palette.DefaultStyle),
		BadgeURL:   body.BadgeURL,
		Duration:   4.0,
	}
	if body.Duration != nil {
		req.Duration = *body.Duration
	}

	if req.Duration <= 0 {
		s.writeError(w, apperr.New(apperr.CodeInvalidInput, "duration must be positive"))
		return
	}
	if utf8.RuneCountInString(req.MainTitle) > maxTitleLen || utf8.RuneCountInString(req.Subtitle) > maxTitleLen {
		s.writeError(w, apperr.New(apperr.CodeInvalidInput, "title and subtitle are limited to %d characters", maxTitleLen))
		return
	}

	start := time.Now()
	video, err := s.gen.Generate(r.Context(), req)
	if err != nil {
		s.logger.Error("render failed", "err", err, "output", req.OutputName)
		s.writeError(w, err)
		return
	}
	s.logger.Info("render served", "video", video, "elapsed", time.Since(start).Round(time.Millisecond))

	writeJSON(w, http.StatusOK, createResponse{
		Status: "ok",
		Video:  video,
		Parameters: createParams{
			MainTitle:  req.MainTitle,
			Subtitle:   req.Subtitle,
			OutputName: req.OutputName,
			Duration:   req.Duration,
			Style:      req.Style,
			BadgeURL:   req.BadgeURL,
		},
	})
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"styles": palette.Names()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps invalid input to 400 and keeps everything else a generic
// 500 so encoder internals never leak to clients.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "video generation failed"

	if apperr.Is(err, apperr.CodeInvalidInput) {
		status = http.StatusBadRequest
		msg = apperr.UserMessage(err)
	}
	writeJSON(w, status, map[string]string{"status": "error", "error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
