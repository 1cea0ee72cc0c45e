package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
)

const maxBody = 1 << 20

// moduleInfo is one entry of the module listing.
type moduleInfo struct {
	scenario.Info
	Fields []grading.Field `json:"fields"`
}

type gradeRequest struct {
	Problem    *scenario.Problem `json:"problem"`
	Submission json.RawMessage   `json:"submission"`
}

type answerRequest struct {
	Problem  *scenario.Problem `json:"problem"`
	OptionID string            `json:"optionId"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func (s *Server) listModules(w http.ResponseWriter, _ *http.Request) {
	infos := scenario.Modules()
	out := make([]moduleInfo, 0, len(infos))
	for _, info := range infos {
		fields, err := grading.Fields(info.Module)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out = append(out, moduleInfo{Info: info, Fields: fields})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) newScenario(w http.ResponseWriter, r *http.Request) {
	m, ok := pathModule(w, r)
	if !ok {
		return
	}

	smp := s.newSampler()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("seed %q is not an unsigned integer", raw))
			return
		}
		smp = sampler.NewSeeded(seed)
	}

	p, err := scenario.Generate(m, smp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) grade(w http.ResponseWriter, r *http.Request) {
	m, ok := pathModule(w, r)
	if !ok {
		return
	}

	var req gradeRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Problem == nil || len(req.Submission) == 0 {
		writeError(w, http.StatusBadRequest, "problem and submission are required")
		return
	}
	if req.Problem.Module != m {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s problem posted to %s", req.Problem.Module, m))
		return
	}
	sub, err := grading.DecodeSubmission(m, req.Submission)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.grader.Grade(r.Context(), req.Problem, sub)
	if err != nil {
		writeGradeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// answerChoice grades a posted composition-change problem. The API is
// stateless and the problem JSON carries its answer key for self-study
// clients; grading rebuilds the key from the measurements, so edited
// isCorrect or feedback fields have no effect.
func (s *Server) answerChoice(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Problem == nil {
		writeError(w, http.StatusBadRequest, "problem is required")
		return
	}

	res, err := s.grader.Grade(r.Context(), req.Problem, &grading.ChoiceSubmission{
		ProblemID: req.Problem.ID,
		OptionID:  req.OptionID,
	})
	if err != nil {
		writeGradeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) personalEnergy(w http.ResponseWriter, r *http.Request) {
	var attrs scenario.PersonalAttributes
	if !decode(w, r, &attrs) {
		return
	}
	p, err := scenario.NewPersonalEnergy(s.newSampler(), attrs)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scenario.ErrInvalidAttributes) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func pathModule(w http.ResponseWriter, r *http.Request) (scenario.Module, bool) {
	m, err := scenario.ParseModule(mux.Vars(r)["module"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", false
	}
	return m, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// writeGradeError maps grading errors to statuses. Provider failures
// never reach here; they come back as fallback results.
func writeGradeError(w http.ResponseWriter, err error) {
	var incomplete *grading.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Fields: incomplete.Fields})
	case errors.Is(err, grading.ErrUnknownOption):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
