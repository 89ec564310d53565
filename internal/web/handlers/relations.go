package handlers

import "net/http"

// GetQuestionLike returns one like row
func (h *Handlers) GetQuestionLike(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	like, err := h.db.GetQuestionLike(id)
	h.respond(w, r, like, err)
}

// GetQuestionFollow returns one follow row
func (h *Handlers) GetQuestionFollow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	follow, err := h.db.GetQuestionFollow(id)
	h.respond(w, r, follow, err)
}

// FollowersByTitle returns the users following questions titled ?title=
func (h *Handlers) FollowersByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		h.jsonError(w, "title is required", http.StatusBadRequest)
		return
	}
	users, err := h.db.ListFollowersForQuestionTitle(title)
	h.respond(w, r, users, err)
}
