package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/coderpratik11/gamified-tracker/internal/catalog"
	"github.com/coderpratik11/gamified-tracker/internal/models"
	"github.com/coderpratik11/gamified-tracker/internal/service"
)

type WorkEntryHandler struct {
	service *service.WorkEntryService
	logger  *zap.Logger
}

func NewWorkEntryHandler(service *service.WorkEntryService, logger *zap.Logger) *WorkEntryHandler {
	return &WorkEntryHandler{
		service: service,
		logger:  logger,
	}
}

func (h *WorkEntryHandler) ListWorkEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list work entries", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *WorkEntryHandler) SubmitWorkEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Work entry added successfully.",
		"entry":   entry,
	})
}

func (h *WorkEntryHandler) ApproveWorkEntry(w http.ResponseWriter, r *http.Request) {
	var req models.ApproveWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Approve(r.Context(), r.PathValue("entryId"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task approval updated.",
		"entry":   entry,
	})
}

func (h *WorkEntryHandler) RejectWorkEntry(w http.ResponseWriter, r *http.Request) {
	// Body is optional for reject under the legacy policy.
	var req models.RejectWorkEntryRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	entry, err := h.service.Reject(r.Context(), r.PathValue("entryId"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task rejected successfully.",
		"entry":   entry,
	})
}

func (h *WorkEntryHandler) UpdateWorkEntry(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Edit(r.Context(), r.PathValue("entryId"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task updated successfully. Approvals have been reset.",
		"entry":   entry,
	})
}

func (h *WorkEntryHandler) DeleteWorkEntry(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteWorkEntryRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	if err := h.service.Remove(r.Context(), r.PathValue("entryId"), req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Task deleted successfully.")
}

func (h *WorkEntryHandler) ListWorkTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]map[string]any, 0)
	for _, name := range catalog.WorkTypes() {
		def, _ := catalog.Lookup(name)
		types = append(types, map[string]any{
			"workType": name,
			"points":   def.Points,
			"category": def.Category,
		})
	}
	writeJSON(w, http.StatusOK, types)
}
