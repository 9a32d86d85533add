// Package api exposes the search and resource capabilities over HTTP,
// mirroring the MCP tool surface for non-MCP callers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mattnico/ldsmcp-sub001/internal/filter"
	"github.com/mattnico/ldsmcp-sub001/internal/resource"
	"github.com/mattnico/ldsmcp-sub001/internal/search"
)

// Handlers holds the dependencies of the HTTP surface.
type Handlers struct {
	Exec     *search.Executor
	Resolver *resource.Resolver
	Log      *zap.Logger
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Router mounts all routes.
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/v1/search/domains", h.DomainsHandler)
	r.Post("/v1/search/{family}", h.SearchHandler)
	r.Get("/v1/resources", h.ListResourcesHandler)
	r.Get("/v1/resources/read", h.ReadResourceHandler)
	return r
}

// SearchHandler handles POST /v1/search/{family}.
func (h *Handlers) SearchHandler(w http.ResponseWriter, r *http.Request) {
	family := chi.URLParam(r, "family")

	if _, err := search.Get(family); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Message: err.Error(), Type: "not_found"},
		})
		return
	}

	var params search.Params
	if err := decodeJSON(r, &params); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: errorDetail{Message: "invalid JSON: " + err.Error(), Type: "invalid_request_error"},
		})
		return
	}
	if params.Start == 0 {
		params.Start = 1
	}

	result, err := h.Exec.Search(r.Context(), family, params)
	if err != nil {
		// Builder-time validation failure.
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: errorDetail{Message: err.Error(), Type: "invalid_request_error"},
		})
		return
	}

	// Executor-time failures ride inside the result so callers can inspect
	// partial failures in aggregate flows.
	writeJSON(w, http.StatusOK, result)
}

// DomainsHandler lists provider families and filterable content domains.
func (h *Handlers) DomainsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"families": search.List(),
		"domains":  filter.Domains(),
	})
}

// ListResourcesHandler handles GET /v1/resources.
func (h *Handlers) ListResourcesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"resources": h.Resolver.List(),
	})
}

// ReadResourceHandler handles GET /v1/resources/read?uri=...
func (h *Handlers) ReadResourceHandler(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	if uri == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: errorDetail{Message: "uri query parameter is required", Type: "invalid_request_error"},
		})
		return
	}
	writeJSON(w, http.StatusOK, h.Resolver.Read(r.Context(), uri))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
