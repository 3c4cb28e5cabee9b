package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/handler/http/response"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PunchHandler interface {
	ListPunches(w http.ResponseWriter, r *http.Request)
	CreatePunch(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
	syncService  punch.SyncService
}

func NewPunchHandler(punchService punch.PunchService, syncService punch.SyncService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
		syncService:  syncService,
	}
}

// ListPunches implements PunchHandler. An optional date query parameter
// narrows the listing to one day.
func (h *punchHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	var (
		results []punch.PunchResponse
		err     error
	)
	if date != "" {
		if _, ok := validator.IsValidDateString(date); !ok {
			response.BadRequest(w, "date must be a valid yyyy-MM-dd date", nil)
			return
		}
		results, err = h.punchService.ListPunchesByDate(r.Context(), date)
	} else {
		results, err = h.punchService.ListPunches(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreatePunch implements PunchHandler - manual single entry
func (h *punchHandlerImpl) CreatePunch(w http.ResponseWriter, r *http.Request) {
	var req punch.CreatePunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.punchService.CreatePunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch event recorded", result)
}

// DeletePunch implements PunchHandler
func (h *punchHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Punch ID must be an integer", nil)
		return
	}

	if err := h.punchService.DeletePunch(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch event deleted successfully", nil)
}

// Sync implements PunchHandler - runs device reconciliation on demand
func (h *punchHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.Sync(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
