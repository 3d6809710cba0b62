package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons/{seasonID}/scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons/{seasonID}/players", handler.ListSeasonPlayers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/seasons/{seasonID}/games", handler.ListSeasonGames)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/games", handler.ListTeamGames)

	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/managers/{managerID}", handler.GetManager)

	mux.HandleFunc("GET /v1/games", handler.ListGamesByDate)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
}
