package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saltyorg/aaquestions/internal/database"
	"github.com/saltyorg/aaquestions/internal/testutil"
	"github.com/saltyorg/aaquestions/internal/web/handlers"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := database.New(testutil.FixtureStore(t))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewServer(db, "127.0.0.1", 0, nil)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestRoutes_Status(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		target string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/api/users/1", http.StatusOK},
		{"/api/users/999", http.StatusNotFound},
		{"/api/users/abc", http.StatusBadRequest},
		{"/api/users/by-name?fname=Alan&lname=Turing", http.StatusOK},
		{"/api/users/by-name?fname=Alan", http.StatusBadRequest},
		{"/api/users/999/questions", http.StatusNotFound},
		{"/api/questions?author_id=1", http.StatusOK},
		{"/api/questions?author_id=x", http.StatusBadRequest},
		{"/api/questions", http.StatusBadRequest},
		{"/api/questions/by-title?title=Why%20goroutines%3F", http.StatusOK},
		{"/api/questions/by-title?title=nope", http.StatusNotFound},
		{"/api/questions/by-title", http.StatusBadRequest},
		{"/api/questions/most-followed?n=0", http.StatusBadRequest},
		{"/api/questions/5/replies", http.StatusOK},
		{"/api/replies", http.StatusBadRequest},
		{"/api/replies?question_id=1&author_id=2", http.StatusBadRequest},
		{"/api/replies/1/parent", http.StatusNotFound},
		{"/api/replies/3/parent", http.StatusOK},
		{"/api/question-likes/1", http.StatusOK},
		{"/api/question-likes/99", http.StatusNotFound},
		{"/api/question-follows/1", http.StatusOK},
		{"/api/question-follows/followers", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != tt.status {
				t.Fatalf("GET %s = %d, want %d (body %q)", tt.target, rec.Code, tt.status, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Fatalf("GET %s content type = %q", tt.target, ct)
			}
		})
	}
}

func TestRoutes_RejectWrites(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestGetUser_Body(t *testing.T) {
	s := newTestServer(t)

	user := decode[database.User](t, get(t, s, "/api/users/3"))
	if user.ID != 3 || user.FirstName != "Grace" || user.LastName != "Hopper" {
		t.Fatalf("unexpected user %+v", user)
	}

	errBody := decode[map[string]string](t, get(t, s, "/api/users/999"))
	if errBody["error"] == "" {
		t.Fatalf("expected error message, got %v", errBody)
	}
}

func TestQuestionLikes_ZeroWhenUnliked(t *testing.T) {
	s := newTestServer(t)

	likes := decode[handlers.LikesResponse](t, get(t, s, "/api/questions/3/likes"))
	if likes.QuestionID != 3 || likes.Likes != 0 {
		t.Fatalf("unexpected likes %+v", likes)
	}

	likes = decode[handlers.LikesResponse](t, get(t, s, "/api/questions/1/likes"))
	if likes.Likes != 3 {
		t.Fatalf("expected 3 likes, got %d", likes.Likes)
	}
}

func TestMostFollowed_Body(t *testing.T) {
	s := newTestServer(t)

	body := decode[handlers.MostFollowedResponse](t, get(t, s, "/api/questions/most-followed?n=2"))
	if len(body.Questions) != 2 || body.TopCount != 5 {
		t.Fatalf("expected 2 questions with top 5, got %d with %d", len(body.Questions), body.TopCount)
	}
	if body.Questions[0].ID != 1 || body.Questions[0].FollowCount != 5 {
		t.Fatalf("unexpected first question %+v", body.Questions[0])
	}
	if body.Questions[1].FollowCount != 3 {
		t.Fatalf("unexpected second question %+v", body.Questions[1])
	}
}

func TestReplyChildren_EmptyList(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/replies/4/children")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}

	children := decode[[]database.Reply](t, get(t, s, "/api/replies/1/children"))
	if len(children) != 1 || children[0].ID != 2 {
		t.Fatalf("unexpected children %+v", children)
	}
}

func TestRelations_Bodies(t *testing.T) {
	s := newTestServer(t)

	followers := decode[[]database.User](t, get(t, s, "/api/question-follows/followers?title=Is%20SQL%20a%20language%3F"))
	if len(followers) != 1 || followers[0].ID != 2 {
		t.Fatalf("unexpected followers %+v", followers)
	}

	liked := decode[[]database.Question](t, get(t, s, "/api/users/1/liked-questions"))
	if len(liked) != 1 || liked[0].ID != 2 {
		t.Fatalf("unexpected liked questions %+v", liked)
	}

	replies := decode[[]database.Reply](t, get(t, s, "/api/replies?author_id=2"))
	if len(replies) != 2 {
		t.Fatalf("expected 2 replies, got %+v", replies)
	}

	author := decode[database.User](t, get(t, s, "/api/replies/2/author"))
	if author.ID != 3 {
		t.Fatalf("unexpected author %+v", author)
	}

	byName := decode[[]database.Question](t, get(t, s, "/api/questions?fname=Ada&lname=Lovelace"))
	if len(byName) != 2 {
		t.Fatalf("expected 2 questions, got %+v", byName)
	}
}

func TestServer_Addr(t *testing.T) {
	s := NewServer(nil, "127.0.0.1", 8080, nil)
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Fatalf("Addr = %q", got)
	}
}

func TestRoutes_NoRequestDeadline(t *testing.T) {
	s := newTestServer(t)

	s.router.Get("/deadline", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	rec := get(t, s, "/deadline")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected no request deadline, got status %d", rec.Code)
	}
}
