package usecase

import (
	"github.com/riskibarqy/football-data/internal/domain/game"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
	"github.com/riskibarqy/football-data/internal/domain/person"
	"github.com/riskibarqy/football-data/internal/domain/scorer"
	"github.com/riskibarqy/football-data/internal/domain/team"
)

// Player status tags inside a game composition. A player appears with
// exactly one of them; the start list wins when both lists name the player.
const (
	PlayerStatusStartingLineup = "starting_lineup"
	PlayerStatusSubstitute     = "substitute"
)

type PlayerInGame struct {
	ID     int64
	Name   string
	Team   matchdoc.TeamSnapshot
	Status string
}

// GameDetailView joins the relational fixture row with its match document.
// When no document exists the composition and event slices are empty.
type GameDetailView struct {
	Game             game.Game
	HomeComposition  []PlayerInGame
	GuestComposition []PlayerInGame
	HomeManager      *matchdoc.PersonSnapshot
	GuestManager     *matchdoc.PersonSnapshot
	Events           []matchdoc.Event
}

type SeasonTableView struct {
	Season    league.Season
	Standings []league.Standing
}

type TopScorersView struct {
	Season  league.Season
	Players []scorer.PlayerSeasonStats
}

type TeamRoster struct {
	Team    person.TeamRef
	Players []person.SeasonPlayer
}

type SeasonPlayersView struct {
	Season league.Season
	Teams  []TeamRoster
}

type SeasonGamesView struct {
	Season league.Season
	Games  []game.Game
}

type TeamGamesView struct {
	Team  team.Team
	Games []game.Game
}
