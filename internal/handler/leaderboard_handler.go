package handler

import (
	"net/http"
	"regexp"

	"go.uber.org/zap"

	"github.com/coderpratik11/gamified-tracker/internal/service"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

type LeaderboardHandler struct {
	service *service.LeaderboardService
	logger  *zap.Logger
}

func NewLeaderboardHandler(service *service.LeaderboardService, logger *zap.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
		logger:  logger,
	}
}

func (h *LeaderboardHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !monthPattern.MatchString(month) {
		writeMessage(w, http.StatusBadRequest, "month query parameter must be YYYY-MM")
		return
	}

	scores, err := h.service.Monthly(r.Context(), month)
	if err != nil {
		h.logger.Error("Failed to compute leaderboard", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}
