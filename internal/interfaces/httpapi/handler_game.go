package httpapi

import (
	"net/http"
	"strings"
	"time"
)

type listGamesByDateRequest struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.gameService.GetByID(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameDetailToDTO(view))
}

func (h *Handler) ListSeasonGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonGames")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.gameService.ListForSeason(ctx, leagueID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season games failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	games := make([]gameDTO, 0, len(view.Games))
	for _, g := range view.Games {
		games = append(games, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, seasonGamesDTO{
		Season: seasonToDTO(view.Season),
		Games:  games,
	})
}

func (h *Handler) ListGamesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGamesByDate")
	defer span.End()

	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if err := h.validateRequest(ctx, listGamesByDateRequest{Date: raw}); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, _ := time.Parse("2006-01-02", raw)

	games, err := h.gameService.ListForDate(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list games by date failed", "date", raw, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameWithLeagueDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameWithLeagueToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
