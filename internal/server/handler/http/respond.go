// Package http exposes the asset-management REST API consumed by the
// dashboard client.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
	"github.com/Kurniawan20/effiework-sub000/internal/repository"
	"github.com/Kurniawan20/effiework-sub000/internal/service"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxBodyBytes    = 1 << 20
)

// Responder writes JSON bodies and maps service errors to statuses. Every
// non-2xx response carries a {"message"} body.
type Responder struct {
	Log *zap.Logger
}

func (rs Responder) json(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.Log.Warn("encode response", zap.Error(err))
	}
}

func (rs Responder) message(w http.ResponseWriter, status int, msg string) {
	rs.json(w, status, models.ErrorResponse{Message: msg})
}

// fail writes the status and message matching err.
func (rs Responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		rs.message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		rs.message(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		rs.message(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, repository.ErrInUse):
		rs.message(w, http.StatusConflict, "Resource in use")
	case errors.Is(err, repository.ErrInvalidReference):
		rs.message(w, http.StatusBadRequest, "Referenced record does not exist")
	case errors.Is(err, repository.ErrDuplicate):
		rs.message(w, http.StatusConflict, "Resource already exists")
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrAssetUnavailable):
		rs.message(w, http.StatusConflict, err.Error())
	default:
		rs.Log.Error("request failed",
			zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		rs.message(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body into v, answering 400 itself on failure.
func (rs Responder) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		rs.message(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, answering 400 itself on failure.
func (rs Responder) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		rs.message(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// listParams parses page, size, search, status, categoryId, branchId,
// dateFrom, dateTo and sort from the query string.
func (rs Responder) listParams(w http.ResponseWriter, r *http.Request) (models.ListParams, bool) {
	p, err := parseListParams(r)
	if err != nil {
		rs.message(w, http.StatusBadRequest, err.Error())
		return p, false
	}
	return p, true
}

func parseListParams(r *http.Request) (models.ListParams, error) {
	q := r.URL.Query()
	p := models.ListParams{
		Size:   defaultPageSize,
		Search: q.Get("search"),
		Status: q.Get("status"),
		Sort:   q.Get("sort"),
	}

	var err error
	if v := q.Get("page"); v != "" {
		if p.Page, err = strconv.Atoi(v); err != nil || p.Page < 0 {
			return p, fmt.Errorf("invalid page %q", v)
		}
	}
	if v := q.Get("size"); v != "" {
		if p.Size, err = strconv.Atoi(v); err != nil || p.Size <= 0 {
			return p, fmt.Errorf("invalid size %q", v)
		}
		p.Size = min(p.Size, maxPageSize)
	}
	if v := q.Get("categoryId"); v != "" {
		if p.CategoryID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return p, fmt.Errorf("invalid categoryId %q", v)
		}
	}
	if v := q.Get("branchId"); v != "" {
		if p.BranchID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return p, fmt.Errorf("invalid branchId %q", v)
		}
	}
	if v := q.Get("dateFrom"); v != "" {
		if p.DateFrom, err = time.Parse(time.DateOnly, v); err != nil {
			return p, fmt.Errorf("invalid dateFrom %q", v)
		}
	}
	if v := q.Get("dateTo"); v != "" {
		if p.DateTo, err = time.Parse(time.DateOnly, v); err != nil {
			return p, fmt.Errorf("invalid dateTo %q", v)
		}
	}
	return p, nil
}
