package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/usecase"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /api/actors
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	actors, total, err := h.service.GetActors(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get actors")
		return
	}

	// Build next/previous page links
	totalPages := utils.CalculateTotalPages(total, req.Limit())

	var next, previous *string
	if req.Page < totalPages {
		next = utils.PageLink(r.URL, req.Page+1)
	}
	if req.Page > 1 {
		previous = utils.PageLink(r.URL, req.Page-1)
	}

	utils.WriteJSON(w, http.StatusOK, response.NewPaginatedResponse(actors, total, next, previous))
}

// GetActorByID handles GET /api/actors/{id}
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), actorID)
	if err != nil {
		h.handleServiceError(w, err, "get actor by ID")
		return
	}

	utils.WriteJSON(w, http.StatusOK, actor)
}

// CreateActor handles POST /api/actors (staff only)
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create actor")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, actor)
}

// DeleteActor handles DELETE /api/actors/{id} (staff only)
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	if err := h.service.DeleteActor(r.Context(), actorID); err != nil {
		h.handleServiceError(w, err, "delete actor")
		return
	}

	utils.WriteJSON(w, http.StatusNoContent, nil)
}

// handleServiceError handles errors untuk actor operations
func (h *ActorHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
