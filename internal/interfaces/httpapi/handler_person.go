package httpapi

import (
	"net/http"
)

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.personService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailsToDTO(item))
}

func (h *Handler) GetManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManager")
	defer span.End()

	managerID, err := pathID(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.personService.GetManager(ctx, managerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerDetailsToDTO(item))
}
