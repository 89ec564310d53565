package handlers

import (
	"net/http"
	"strconv"

	"github.com/saltyorg/aaquestions/internal/database"
)

const (
	defaultMostFollowed = 5
	maxMostFollowed     = 100
)

// MostFollowedResponse is the body of /api/questions/most-followed
type MostFollowedResponse struct {
	Questions []*database.RankedQuestion `json:"questions"`
	TopCount  int64                      `json:"top_count"`
}

// LikesResponse is the body of /api/questions/{id}/likes
type LikesResponse struct {
	QuestionID int64 `json:"question_id"`
	Likes      int64 `json:"likes"`
}

// ListQuestions returns questions by ?author_id= or by ?fname=&lname=
func (h *Handlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	authorID, present, ok := h.queryID(w, r, "author_id")
	if !ok {
		return
	}
	if present {
		questions, err := h.db.ListQuestionsByAuthorID(authorID)
		h.respond(w, r, questions, err)
		return
	}

	fname, lname, ok := h.queryNames(w, r)
	if !ok {
		return
	}
	questions, err := h.db.ListQuestionsByAuthorName(fname, lname)
	h.respond(w, r, questions, err)
}

// GetQuestion returns one question
func (h *Handlers) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	question, err := h.db.GetQuestion(id)
	h.respond(w, r, question, err)
}

// GetQuestionByTitle returns the first question titled ?title=
func (h *Handlers) GetQuestionByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		h.jsonError(w, "title is required", http.StatusBadRequest)
		return
	}
	question, err := h.db.GetQuestionByTitle(title)
	h.respond(w, r, question, err)
}

// MostFollowedQuestions returns the ?n= most followed questions
func (h *Handlers) MostFollowedQuestions(w http.ResponseWriter, r *http.Request) {
	n := defaultMostFollowed
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxMostFollowed {
			h.jsonError(w, "n must be between 1 and "+strconv.Itoa(maxMostFollowed), http.StatusBadRequest)
			return
		}
		n = v
	}

	questions, top, err := h.db.MostFollowedQuestions(n)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.json(w, MostFollowedResponse{Questions: questions, TopCount: top})
}

// QuestionAuthor returns the user who wrote the question
func (h *Handlers) QuestionAuthor(w http.ResponseWriter, r *http.Request) {
	h.questionRelation(w, r, func(q *database.Question) (any, error) { return q.Author(h.db) })
}

// QuestionReplies returns every reply on the question
func (h *Handlers) QuestionReplies(w http.ResponseWriter, r *http.Request) {
	h.questionRelation(w, r, func(q *database.Question) (any, error) { return q.Replies(h.db) })
}

// QuestionLikers returns the users who like the question
func (h *Handlers) QuestionLikers(w http.ResponseWriter, r *http.Request) {
	h.questionRelation(w, r, func(q *database.Question) (any, error) { return q.Likers(h.db) })
}

// QuestionLikes returns the question's like count
func (h *Handlers) QuestionLikes(w http.ResponseWriter, r *http.Request) {
	h.questionRelation(w, r, func(q *database.Question) (any, error) {
		n, err := q.NumLikes(h.db)
		if err != nil {
			return nil, err
		}
		return LikesResponse{QuestionID: q.ID, Likes: n}, nil
	})
}

// QuestionFollowers returns the users who follow the question
func (h *Handlers) QuestionFollowers(w http.ResponseWriter, r *http.Request) {
	h.questionRelation(w, r, func(q *database.Question) (any, error) { return q.Followers(h.db) })
}

func (h *Handlers) questionRelation(w http.ResponseWriter, r *http.Request, fetch func(*database.Question) (any, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	question, err := h.db.GetQuestion(id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	v, err := fetch(question)
	h.respond(w, r, v, err)
}
