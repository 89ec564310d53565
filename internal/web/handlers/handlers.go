package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/aaquestions/internal/database"
)

// Handlers serves the read-only JSON API over one store handle.
type Handlers struct {
	db *database.DB
}

// New creates the API handlers
func New(db *database.DB) *Handlers {
	return &Handlers{db: db}
}

// Health reports that the server is up and the store answers queries.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if _, _, err := h.db.MostFollowedQuestions(1); err != nil {
		log.Error().Err(err).Msg("Health check query failed")
		h.jsonError(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	h.json(w, map[string]string{"status": "ok"})
}

// json sends v as a 200 JSON response
func (h *Handlers) json(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// jsonError sends a JSON error response
func (h *Handlers) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// storeError maps a database error onto a response: 404 for a missed
// lookup, 500 for anything else.
func (h *Handlers) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, database.ErrNotFound) {
		h.jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("Store query failed")
	h.jsonError(w, "query failed", http.StatusInternalServerError)
}

// respond writes v, or the error if err is set
func (h *Handlers) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.json(w, v)
}

// pathID parses the {id} URL parameter
func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.jsonError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// queryID parses an integer query parameter; present reports whether it was given.
func (h *Handlers) queryID(w http.ResponseWriter, r *http.Request, name string) (id int64, present, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.jsonError(w, "invalid "+name, http.StatusBadRequest)
		return 0, true, false
	}
	return id, true, true
}

// queryNames reads the fname/lname pair; both are required together.
func (h *Handlers) queryNames(w http.ResponseWriter, r *http.Request) (fname, lname string, ok bool) {
	fname = r.URL.Query().Get("fname")
	lname = r.URL.Query().Get("lname")
	if fname == "" || lname == "" {
		h.jsonError(w, "fname and lname are required", http.StatusBadRequest)
		return "", "", false
	}
	return fname, lname, true
}
