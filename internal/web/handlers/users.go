package handlers

import (
	"net/http"

	"github.com/saltyorg/aaquestions/internal/database"
)

// GetUser returns one user
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	user, err := h.db.GetUser(id)
	h.respond(w, r, user, err)
}

// GetUserByName returns the first user matching ?fname=&lname=
func (h *Handlers) GetUserByName(w http.ResponseWriter, r *http.Request) {
	fname, lname, ok := h.queryNames(w, r)
	if !ok {
		return
	}
	user, err := h.db.GetUserByName(fname, lname)
	h.respond(w, r, user, err)
}

// UserQuestions returns the questions a user wrote
func (h *Handlers) UserQuestions(w http.ResponseWriter, r *http.Request) {
	h.userRelation(w, r, func(u *database.User) (any, error) { return u.AuthoredQuestions(h.db) })
}

// UserReplies returns the replies a user wrote
func (h *Handlers) UserReplies(w http.ResponseWriter, r *http.Request) {
	h.userRelation(w, r, func(u *database.User) (any, error) { return u.AuthoredReplies(h.db) })
}

// UserLikedQuestions returns the questions a user likes
func (h *Handlers) UserLikedQuestions(w http.ResponseWriter, r *http.Request) {
	h.userRelation(w, r, func(u *database.User) (any, error) { return u.LikedQuestions(h.db) })
}

// UserFollowedQuestions returns the questions a user follows
func (h *Handlers) UserFollowedQuestions(w http.ResponseWriter, r *http.Request) {
	h.userRelation(w, r, func(u *database.User) (any, error) { return u.FollowedQuestions(h.db) })
}

// userRelation loads the {id} user first so an unknown user is a 404, not an empty list.
func (h *Handlers) userRelation(w http.ResponseWriter, r *http.Request, fetch func(*database.User) (any, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	user, err := h.db.GetUser(id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	v, err := fetch(user)
	h.respond(w, r, v, err)
}
