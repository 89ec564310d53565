package handlers

import (
	"net/http"

	"github.com/saltyorg/aaquestions/internal/database"
)

// ListReplies returns replies by ?question_id= or ?author_id=
func (h *Handlers) ListReplies(w http.ResponseWriter, r *http.Request) {
	questionID, hasQuestion, ok := h.queryID(w, r, "question_id")
	if !ok {
		return
	}
	authorID, hasAuthor, ok := h.queryID(w, r, "author_id")
	if !ok {
		return
	}

	switch {
	case hasQuestion && hasAuthor:
		h.jsonError(w, "use either question_id or author_id", http.StatusBadRequest)
	case hasQuestion:
		replies, err := h.db.ListRepliesByQuestionID(questionID)
		h.respond(w, r, replies, err)
	case hasAuthor:
		replies, err := h.db.ListRepliesByAuthorID(authorID)
		h.respond(w, r, replies, err)
	default:
		h.jsonError(w, "question_id or author_id is required", http.StatusBadRequest)
	}
}

// GetReply returns one reply
func (h *Handlers) GetReply(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	reply, err := h.db.GetReply(id)
	h.respond(w, r, reply, err)
}

// ReplyAuthor returns the user who wrote the reply
func (h *Handlers) ReplyAuthor(w http.ResponseWriter, r *http.Request) {
	h.replyRelation(w, r, func(rp *database.Reply) (any, error) { return rp.Author(h.db) })
}

// ReplyQuestion returns the question the reply belongs to
func (h *Handlers) ReplyQuestion(w http.ResponseWriter, r *http.Request) {
	h.replyRelation(w, r, func(rp *database.Reply) (any, error) { return rp.Question(h.db) })
}

// ReplyParent returns the parent reply; a root reply answers 404
func (h *Handlers) ReplyParent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	reply, err := h.db.GetReply(id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	parent, err := reply.ParentReply(h.db)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	if parent == nil {
		h.jsonError(w, "reply has no parent", http.StatusNotFound)
		return
	}
	h.json(w, parent)
}

// ReplyChildren returns the direct answers to the reply
func (h *Handlers) ReplyChildren(w http.ResponseWriter, r *http.Request) {
	h.replyRelation(w, r, func(rp *database.Reply) (any, error) { return rp.ChildReplies(h.db) })
}

func (h *Handlers) replyRelation(w http.ResponseWriter, r *http.Request, fetch func(*database.Reply) (any, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	reply, err := h.db.GetReply(id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	v, err := fetch(reply)
	h.respond(w, r, v, err)
}
