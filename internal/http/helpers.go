package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"finhealth/internal/core"
)

// callerHeader carries the verified caller identity. Authentication happens
// upstream; the header content is trusted here.
const callerHeader = "X-Caller"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeEngineError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, core.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrAlreadyInitialized),
		errors.Is(err, core.ErrNotInitialized),
		errors.Is(err, core.ErrNotConfigured):
		return http.StatusConflict
	case errors.Is(err, core.ErrCollaborator):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func caller(r *http.Request) (string, error) {
	c := r.Header.Get(callerHeader)
	if c == "" {
		return "", fmt.Errorf("missing %s header", callerHeader)
	}
	return c, nil
}

func queryString(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", fmt.Errorf("missing query parameter %q", name)
	}
	return v, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw, err := queryString(r, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter %q: %v", name, err)
	}
	return v, nil
}

func queryUint64(r *http.Request, name string) (uint64, error) {
	raw, err := queryString(r, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter %q: %v", name, err)
	}
	return v, nil
}

// queryPeriod parses the optional period_start/period_end pair. Absent
// values default to zero; bounds are not validated against each other.
func queryPeriod(r *http.Request) (uint64, uint64, error) {
	var start, end uint64
	var err error
	if r.URL.Query().Get("period_start") != "" {
		if start, err = queryUint64(r, "period_start"); err != nil {
			return 0, 0, err
		}
	}
	if r.URL.Query().Get("period_end") != "" {
		if end, err = queryUint64(r, "period_end"); err != nil {
			return 0, 0, err
		}
	}
	return start, end, nil
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %v", err)
	}
	return nil
}
