package router

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/coderpratik11/gamified-tracker/internal/handler"
)

func New(
	workEntryHandler *handler.WorkEntryHandler,
	userHandler *handler.UserHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// User endpoints
	mux.HandleFunc("POST /api/login", userHandler.Login)
	mux.HandleFunc("PUT /api/users/password", userHandler.ChangePassword)
	mux.HandleFunc("PUT /api/users/profile/giphy", userHandler.UpdateGiphyLink)
	mux.HandleFunc("GET /api/users", userHandler.ListUsers)

	// Work entry endpoints
	mux.HandleFunc("GET /api/workdata", workEntryHandler.ListWorkEntries)
	mux.HandleFunc("POST /api/workdata", workEntryHandler.SubmitWorkEntry)
	mux.HandleFunc("PUT /api/workdata/{entryId}/approve", workEntryHandler.ApproveWorkEntry)
	mux.HandleFunc("PUT /api/workdata/{entryId}/reject", workEntryHandler.RejectWorkEntry)
	mux.HandleFunc("PUT /api/workdata/{entryId}", workEntryHandler.UpdateWorkEntry)
	mux.HandleFunc("DELETE /api/workdata/{entryId}", workEntryHandler.DeleteWorkEntry)
	mux.HandleFunc("GET /api/worktypes", workEntryHandler.ListWorkTypes)

	// Leaderboard
	mux.HandleFunc("GET /api/leaderboard", leaderboardHandler.Monthly)

	// Logging middleware
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		mux.ServeHTTP(w, r)
	})
}
