package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/loadouthq/setups/internal/middleware"
	"github.com/loadouthq/setups/internal/model"
	"github.com/loadouthq/setups/internal/service"
)

// SetupService is the business-logic surface the handler depends on.
type SetupService interface {
	List(ctx context.Context) ([]*model.Setup, error)
	Get(ctx context.Context, id string) (*model.Setup, error)
	Create(ctx context.Context, ownerID string, req *model.CreateSetupRequest) (*model.Setup, error)
	Update(ctx context.Context, callerID, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, callerID, id string) error
}

// SetupHandler handles setup HTTP endpoints.
type SetupHandler struct {
	setups SetupService
	logger *slog.Logger
}

// NewSetupHandler creates a new setup handler.
func NewSetupHandler(setups SetupService, logger *slog.Logger) *SetupHandler {
	return &SetupHandler{setups: setups, logger: logger}
}

// createSetupBody is the POST /setups request body.
type createSetupBody struct {
	Setup model.CreateSetupRequest `json:"setup"`
}

// List handles GET /setups. The listing is public.
func (h *SetupHandler) List(w http.ResponseWriter, r *http.Request) {
	setups, err := h.setups.List(r.Context())
	if err != nil {
		h.logError(r, "list setups failed", err)
		WriteError(w, MapServiceError(err))
		return
	}

	if setups == nil {
		setups = []*model.Setup{}
	}
	WriteJSON(w, http.StatusOK, SetupsResponse{Setups: setups})
}

// Get handles GET /setups/{setupId}.
func (h *SetupHandler) Get(w http.ResponseWriter, r *http.Request) {
	setup, err := h.setups.Get(r.Context(), r.PathValue("setupId"))
	if err != nil {
		h.logError(r, "get setup failed", err)
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, SetupResponse{Setup: setup})
}

// Create handles POST /setups. The owner is always the authenticated
// caller, whatever the payload says.
func (h *SetupHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var body createSetupBody
	if err := DecodeJSON(r, &body); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	setup, err := h.setups.Create(r.Context(), userID, &body.Setup)
	if err != nil {
		h.logError(r, "create setup failed", err)
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, SetupResponse{Setup: setup})
}

// Update handles PATCH /setups/{setupId}. Blank-valued fields are stripped
// from the payload before it reaches persistence, so an empty form input
// can never blank a stored field.
func (h *SetupHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	payload, err := DecodeJSONMap(r)
	if err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	fields := map[string]interface{}{}
	if setup, ok := service.StripBlankFields(payload)["setup"].(map[string]interface{}); ok {
		fields = setup
	}

	if err := h.setups.Update(r.Context(), userID, r.PathValue("setupId"), fields); err != nil {
		h.logError(r, "update setup failed", err)
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Delete handles DELETE /setups/{setupId}.
func (h *SetupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.setups.Delete(r.Context(), userID, r.PathValue("setupId")); err != nil {
		h.logError(r, "delete setup failed", err)
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// logError records a failed request. Expected domain failures are logged at
// debug so the logs stay focused on real faults.
func (h *SetupHandler) logError(r *http.Request, msg string, err error) {
	pd := MapServiceError(err)
	level := slog.LevelError
	if pd != nil && pd.Status < http.StatusInternalServerError {
		level = slog.LevelDebug
	}
	h.logger.LogAttrs(r.Context(), level, msg,
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)
}
