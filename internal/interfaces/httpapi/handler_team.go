package httpapi

import (
	"net/http"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamDetailsToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamRelationsToDTO(item))
}

func (h *Handler) ListTeamGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamGames")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.ListGames(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team games failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	games := make([]gameDTO, 0, len(view.Games))
	for _, g := range view.Games {
		games = append(games, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, teamGamesDTO{
		Team:  teamRefDTO{ID: view.Team.ID, Name: view.Team.Name},
		Games: games,
	})
}
