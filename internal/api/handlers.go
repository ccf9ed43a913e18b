package api

import (
	"encoding/json"
	"net/http"

	"github.com/syntree-dev/syntree/pkg/errors"
	"github.com/syntree-dev/syntree/pkg/pipeline"
)

// renderRequest is the body for POST /api/v1/render.
type renderRequest struct {
	Source        string  `json:"source"`
	Format        string  `json:"format"`
	FontSize      float64 `json:"font_size,omitempty"`
	VSpace        float64 `json:"v_space,omitempty"`
	HGap          float64 `json:"h_gap,omitempty"`
	Margin        float64 `json:"margin,omitempty"`
	TerminalLines bool    `json:"terminal_lines,omitempty"`
	Monochrome    bool    `json:"monochrome,omitempty"`
	Graph         bool    `json:"graph,omitempty"`
	Refresh       bool    `json:"refresh,omitempty"`
}

// parseRequest is the body for POST /api/v1/parse.
type parseRequest struct {
	Source string `json:"source"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var contentTypes = map[string]string{
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Source == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "source is required"))
		return
	}
	writeJSON(w, http.StatusOK, pipeline.Parse(req.Source))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Format == "" {
		req.Format = pipeline.FormatPNG
	}
	if err := pipeline.ValidateFormat(req.Format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Source:        req.Source,
		FontSize:      req.FontSize,
		VSpace:        req.VSpace,
		HGap:          req.HGap,
		Margin:        req.Margin,
		TerminalLines: req.TerminalLines,
		Monochrome:    req.Monochrome,
		Graph:         req.Graph,
		Formats:       []string{req.Format},
		Refresh:       req.Refresh,
		Logger:        s.logger,
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[req.Format])
	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[req.Format])
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidConfig, errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	s.logger.Warn("request failed",
		"id", RequestID(r.Context()),
		"code", code,
		"error", err)
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
