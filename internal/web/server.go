package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/aaquestions/internal/config"
	"github.com/saltyorg/aaquestions/internal/database"
	"github.com/saltyorg/aaquestions/internal/web/handlers"
	"github.com/saltyorg/aaquestions/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	db       *database.DB
	bind     string
	port     int
	timeouts *config.TimeoutConfig
	router   *chi.Mux
	handlers *handlers.Handlers
}

// NewServer creates a new web server
func NewServer(db *database.DB, bind string, port int, timeouts *config.TimeoutConfig) *Server {
	if timeouts == nil {
		timeouts = config.DefaultTimeoutConfig()
	}
	s := &Server{
		db:       db,
		bind:     bind,
		port:     port,
		timeouts: timeouts,
		router:   chi.NewRouter(),
		handlers: handlers.New(db),
	}
	s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return net.JoinHostPort(s.bind, strconv.Itoa(s.port))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.timeouts.Read,
		WriteTimeout: s.timeouts.Write,
		IdleTimeout:  s.timeouts.Idle,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.Shutdown)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) setupRoutes() {
	r := s.router
	h := s.handlers

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.ReadOnly)

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/by-name", h.GetUserByName)
			r.Get("/{id}", h.GetUser)
			r.Get("/{id}/questions", h.UserQuestions)
			r.Get("/{id}/replies", h.UserReplies)
			r.Get("/{id}/liked-questions", h.UserLikedQuestions)
			r.Get("/{id}/followed-questions", h.UserFollowedQuestions)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", h.ListQuestions)
			r.Get("/by-title", h.GetQuestionByTitle)
			r.Get("/most-followed", h.MostFollowedQuestions)
			r.Get("/{id}", h.GetQuestion)
			r.Get("/{id}/author", h.QuestionAuthor)
			r.Get("/{id}/replies", h.QuestionReplies)
			r.Get("/{id}/likers", h.QuestionLikers)
			r.Get("/{id}/likes", h.QuestionLikes)
			r.Get("/{id}/followers", h.QuestionFollowers)
		})

		r.Route("/replies", func(r chi.Router) {
			r.Get("/", h.ListReplies)
			r.Get("/{id}", h.GetReply)
			r.Get("/{id}/author", h.ReplyAuthor)
			r.Get("/{id}/question", h.ReplyQuestion)
			r.Get("/{id}/parent", h.ReplyParent)
			r.Get("/{id}/children", h.ReplyChildren)
		})

		r.Get("/question-likes/{id}", h.GetQuestionLike)
		r.Get("/question-follows/followers", h.FollowersByTitle)
		r.Get("/question-follows/{id}", h.GetQuestionFollow)
	})
}
