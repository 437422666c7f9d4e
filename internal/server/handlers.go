package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/load"
	"github.com/alexiusacademia/gobend/internal/material"
	"github.com/alexiusacademia/gobend/internal/section"
	"github.com/alexiusacademia/gobend/internal/solver"
	"github.com/alexiusacademia/gobend/internal/units"
	"github.com/alexiusacademia/gobend/internal/version"
)

const maxBody = 1 << 20

// maxStations caps the profile resolution a client may request
const maxStations = 1001

// AnalyzeResponse is the body of a successful POST /api/analyze
type AnalyzeResponse struct {
	Result      *engine.Result  `json:"result"`
	Profile     *engine.Profile `json:"profile,omitempty"`
	Assumptions []string        `json:"assumptions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// inputErrors are caller mistakes, answered with 422
var inputErrors = []error{
	units.ErrInvalidUnitKind,
	units.ErrInvalidUnitSystem,
	section.ErrIncompleteGeometry,
	section.ErrInvalidGeometry,
	section.ErrUnimplemented,
	section.ErrUnknownShape,
	load.ErrIncompleteLoadCase,
	load.ErrUnknownLoad,
	load.ErrUnknownSupport,
	load.ErrDuplicateField,
	material.ErrInvalidMaterial,
	material.ErrUnknownMaterial,
	solver.ErrDivisionByZero,
	solver.ErrOutOfRange,
}

func statusFor(err error) int {
	for _, e := range inputErrors {
		if errors.Is(err, e) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// writeJSON encodes v before committing the status; a value that cannot be
// encoded is answered with 500
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"internal error"}` + "\n")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req engine.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	stations := 0
	if q := r.URL.Query().Get("profile"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 2 || n > maxStations {
			writeError(w, http.StatusBadRequest, "profile must be a station count between 2 and 1001")
			return
		}
		stations = n
	}

	resp, err := s.run(req, stations)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Errorw("analysis failed", "error", err)
			writeError(w, status, "internal error")
			return
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) run(req engine.Request, stations int) (*AnalyzeResponse, error) {
	c, err := s.eng.Resolve(req)
	if err != nil {
		return nil, err
	}
	resp := &AnalyzeResponse{Assumptions: engine.Assumptions}
	if resp.Result, err = engine.AnalyzeCase(c); err != nil {
		return nil, err
	}
	if stations > 0 {
		if resp.Profile, err = engine.SampleProfile(c, stations); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *Server) materials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.Catalog().List())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		version.Info
	}{"ok", version.Get()})
}
