package httpapi

import (
	"net/http"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetByID(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.leagueService.ListSeasons(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonWithLeaderDTO, 0, len(seasons))
	for _, season := range seasons {
		items = append(items, seasonWithLeaderToDTO(season))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
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

	view, err := h.leagueService.GetSeason(ctx, leagueID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	standings := make([]standingDTO, 0, len(view.Standings))
	for _, standing := range view.Standings {
		standings = append(standings, standingToDTO(standing))
	}

	writeSuccess(ctx, w, http.StatusOK, seasonTableDTO{
		Season:    seasonToDTO(view.Season),
		Standings: standings,
	})
}

func (h *Handler) ListSeasonPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonPlayers")
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

	view, err := h.leagueService.ListSeasonPlayers(ctx, leagueID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season players failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]teamRosterDTO, 0, len(view.Teams))
	for _, roster := range view.Teams {
		players := make([]rosterPlayerDTO, 0, len(roster.Players))
		for _, player := range roster.Players {
			players = append(players, rosterPlayerToDTO(player))
		}
		teams = append(teams, teamRosterDTO{
			Team:    teamRefDTO{ID: roster.Team.ID, Name: roster.Team.Name},
			Players: players,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, seasonPlayersDTO{
		Season: seasonToDTO(view.Season),
		Teams:  teams,
	})
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
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

	view, err := h.scorerService.ListTopScorers(ctx, leagueID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "league_id", leagueID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	players := make([]topScorerDTO, 0, len(view.Players))
	for _, player := range view.Players {
		players = append(players, topScorerToDTO(player))
	}

	writeSuccess(ctx, w, http.StatusOK, topScorersDTO{
		Season:  seasonToDTO(view.Season),
		Players: players,
	})
}
