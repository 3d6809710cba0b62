package httpapi

import (
	"time"

	"github.com/riskibarqy/football-data/internal/domain/game"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
	"github.com/riskibarqy/football-data/internal/domain/person"
	"github.com/riskibarqy/football-data/internal/domain/scorer"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/usecase"
)

// Optional fields are pointers without omitempty so absent values render as
// explicit JSON nulls.

type countryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type seasonDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
}

type leagueDTO struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Country       countryDTO `json:"country"`
	CurrentSeason *seasonDTO `json:"current_season"`
}

type teamRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type personRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type seasonWithLeaderDTO struct {
	seasonDTO
	Leader *teamRefDTO `json:"leader"`
}

type standingDTO struct {
	Position      int        `json:"position"`
	Team          teamRefDTO `json:"team"`
	Games         int        `json:"games"`
	Wins          int        `json:"wins"`
	Draws         int        `json:"draws"`
	Loses         int        `json:"loses"`
	ScoredGoals   int        `json:"scored_goals"`
	ConcededGoals int        `json:"conceded_goals"`
	Points        int        `json:"points"`
}

type seasonTableDTO struct {
	Season    seasonDTO     `json:"season"`
	Standings []standingDTO `json:"standings"`
}

type topScorerDTO struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Team             teamRefDTO `json:"team"`
	TeamNumber       *int       `json:"team_number"`
	Games            int        `json:"games"`
	EffectiveActions int        `json:"effective_actions"`
}

type topScorersDTO struct {
	Season  seasonDTO      `json:"season"`
	Players []topScorerDTO `json:"players"`
}

type rosterPlayerDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TeamNumber *int   `json:"team_number"`
}

type teamRosterDTO struct {
	Team    teamRefDTO        `json:"team"`
	Players []rosterPlayerDTO `json:"players"`
}

type seasonPlayersDTO struct {
	Season seasonDTO       `json:"season"`
	Teams  []teamRosterDTO `json:"teams"`
}

type teamDTO struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Founded string        `json:"founded"`
	Manager *personRefDTO `json:"manager"`
}

type teamDetailsDTO struct {
	teamDTO
	Country countryDTO        `json:"country"`
	Seasons []seasonDTO       `json:"seasons"`
	Players []rosterPlayerDTO `json:"players"`
}

type personDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	FullName  string     `json:"full_name"`
	BirthDate string     `json:"birth_date"`
	Country   countryDTO `json:"country"`
}

type playerDetailsDTO struct {
	personDTO
	TeamNumber *int        `json:"team_number"`
	Team       *teamRefDTO `json:"team"`
}

type managerDetailsDTO struct {
	personDTO
	Team *teamRefDTO `json:"team"`
}

type gameDTO struct {
	ID          int64      `json:"id"`
	Season      seasonDTO  `json:"season"`
	GameDate    *string    `json:"game_date"`
	HomeTeam    teamRefDTO `json:"home_team"`
	GuestTeam   teamRefDTO `json:"guest_team"`
	HomeScored  *int       `json:"home_scored_goals"`
	GuestScored *int       `json:"guest_scored_goals"`
}

type leagueRefDTO struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Country countryDTO `json:"country"`
}

type gameWithLeagueDTO struct {
	gameDTO
	League leagueRefDTO `json:"league"`
}

type seasonGamesDTO struct {
	Season seasonDTO `json:"season"`
	Games  []gameDTO `json:"games"`
}

type teamGamesDTO struct {
	Team  teamRefDTO `json:"team"`
	Games []gameDTO  `json:"games"`
}

type compositionPlayerDTO struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Team   teamRefDTO `json:"team"`
	Status string     `json:"status"`
}

type eventPersonDTO struct {
	ID   int64      `json:"id"`
	Name string     `json:"name"`
	Team teamRefDTO `json:"team"`
}

type eventDTO struct {
	Type   string         `json:"event_type"`
	Minute string         `json:"minute"`
	Person eventPersonDTO `json:"person"`
}

type gameDetailDTO struct {
	gameDTO
	HomeComposition  []compositionPlayerDTO `json:"home_composition"`
	GuestComposition []compositionPlayerDTO `json:"guest_composition"`
	HomeManager      *personRefDTO          `json:"home_manager"`
	GuestManager     *personRefDTO          `json:"guest_manager"`
	Events           []eventDTO             `json:"events"`
}

func seasonToDTO(v league.Season) seasonDTO {
	return seasonDTO{ID: v.ID, Name: v.Name, IsCurrent: v.IsCurrent}
}

func leagueToDTO(v league.League) leagueDTO {
	dto := leagueDTO{
		ID:      v.ID,
		Name:    v.Name,
		Country: countryDTO{ID: v.Country.ID, Name: v.Country.Name},
	}
	if v.CurrentSeason != nil {
		season := seasonToDTO(*v.CurrentSeason)
		dto.CurrentSeason = &season
	}
	return dto
}

func seasonWithLeaderToDTO(v league.SeasonWithLeader) seasonWithLeaderDTO {
	dto := seasonWithLeaderDTO{seasonDTO: seasonToDTO(v.Season)}
	if v.Leader != nil {
		dto.Leader = &teamRefDTO{ID: v.Leader.TeamID, Name: v.Leader.TeamName}
	}
	return dto
}

func standingToDTO(v league.Standing) standingDTO {
	return standingDTO{
		Position:      v.Position,
		Team:          teamRefDTO{ID: v.TeamID, Name: v.TeamName},
		Games:         v.Games,
		Wins:          v.Wins,
		Draws:         v.Draws,
		Loses:         v.Loses,
		ScoredGoals:   v.ScoredGoals,
		ConcededGoals: v.ConcededGoals,
		Points:        v.Points,
	}
}

func topScorerToDTO(v scorer.PlayerSeasonStats) topScorerDTO {
	return topScorerDTO{
		ID:               v.ID,
		Name:             v.Name,
		Team:             teamRefDTO{ID: v.Team.ID, Name: v.Team.Name},
		TeamNumber:       v.TeamNumber,
		Games:            v.Games,
		EffectiveActions: v.EffectiveActions,
	}
}

func rosterPlayerToDTO(v person.SeasonPlayer) rosterPlayerDTO {
	return rosterPlayerDTO{ID: v.ID, Name: v.Name, TeamNumber: v.TeamNumber}
}

func teamDetailsToDTO(v team.Details) teamDTO {
	dto := teamDTO{ID: v.ID, Name: v.Name, Founded: v.Founded}
	if v.Manager != nil {
		dto.Manager = &personRefDTO{ID: v.Manager.ID, Name: v.Manager.Name}
	}
	return dto
}

func teamRelationsToDTO(v team.Relations) teamDetailsDTO {
	dto := teamDetailsDTO{
		teamDTO: teamDTO{ID: v.ID, Name: v.Name, Founded: v.Founded},
		Country: countryDTO{ID: v.Country.ID, Name: v.Country.Name},
		Seasons: make([]seasonDTO, 0, len(v.Seasons)),
		Players: make([]rosterPlayerDTO, 0, len(v.Players)),
	}
	if v.Manager != nil {
		dto.Manager = &personRefDTO{ID: v.Manager.ID, Name: v.Manager.Name}
	}
	for _, season := range v.Seasons {
		dto.Seasons = append(dto.Seasons, seasonToDTO(season))
	}
	for _, player := range v.Players {
		dto.Players = append(dto.Players, rosterPlayerDTO{ID: player.ID, Name: player.Name, TeamNumber: player.TeamNumber})
	}
	return dto
}

func personToDTO(v person.Person) personDTO {
	return personDTO{
		ID:        v.ID,
		Name:      v.Name,
		FullName:  v.FullName,
		BirthDate: v.BirthDate.Format("2006-01-02"),
		Country:   countryDTO{ID: v.Country.ID, Name: v.Country.Name},
	}
}

func playerDetailsToDTO(v person.PlayerDetails) playerDetailsDTO {
	dto := playerDetailsDTO{
		personDTO:  personToDTO(v.Person),
		TeamNumber: v.TeamNumber,
	}
	if v.Team != nil {
		dto.Team = &teamRefDTO{ID: v.Team.ID, Name: v.Team.Name}
	}
	return dto
}

func managerDetailsToDTO(v person.ManagerDetails) managerDetailsDTO {
	dto := managerDetailsDTO{personDTO: personToDTO(v.Person)}
	if v.Team != nil {
		dto.Team = &teamRefDTO{ID: v.Team.ID, Name: v.Team.Name}
	}
	return dto
}

func gameToDTO(v game.Game) gameDTO {
	dto := gameDTO{
		ID:          v.ID,
		Season:      seasonToDTO(v.Season),
		HomeTeam:    teamRefDTO{ID: v.HomeTeam.ID, Name: v.HomeTeam.Name},
		GuestTeam:   teamRefDTO{ID: v.GuestTeam.ID, Name: v.GuestTeam.Name},
		HomeScored:  v.HomeScored,
		GuestScored: v.GuestScored,
	}
	if v.GameDate != nil {
		formatted := v.GameDate.UTC().Format(time.RFC3339)
		dto.GameDate = &formatted
	}
	return dto
}

func gameWithLeagueToDTO(v game.WithLeague) gameWithLeagueDTO {
	return gameWithLeagueDTO{
		gameDTO: gameToDTO(v.Game),
		League: leagueRefDTO{
			ID:      v.League.ID,
			Name:    v.League.Name,
			Country: countryDTO{ID: v.League.Country.ID, Name: v.League.Country.Name},
		},
	}
}

func compositionPlayerToDTO(v usecase.PlayerInGame) compositionPlayerDTO {
	return compositionPlayerDTO{
		ID:     v.ID,
		Name:   v.Name,
		Team:   teamRefDTO{ID: v.Team.ID, Name: v.Team.Name},
		Status: v.Status,
	}
}

func eventToDTO(v matchdoc.Event) eventDTO {
	return eventDTO{
		Type:   string(v.Type),
		Minute: v.Minute,
		Person: eventPersonDTO{
			ID:   v.Person.ID,
			Name: v.Person.Name,
			Team: teamRefDTO{ID: v.Person.Team.ID, Name: v.Person.Team.Name},
		},
	}
}

func gameDetailToDTO(v usecase.GameDetailView) gameDetailDTO {
	dto := gameDetailDTO{
		gameDTO:          gameToDTO(v.Game),
		HomeComposition:  make([]compositionPlayerDTO, 0, len(v.HomeComposition)),
		GuestComposition: make([]compositionPlayerDTO, 0, len(v.GuestComposition)),
		Events:           make([]eventDTO, 0, len(v.Events)),
	}
	for _, player := range v.HomeComposition {
		dto.HomeComposition = append(dto.HomeComposition, compositionPlayerToDTO(player))
	}
	for _, player := range v.GuestComposition {
		dto.GuestComposition = append(dto.GuestComposition, compositionPlayerToDTO(player))
	}
	if v.HomeManager != nil {
		dto.HomeManager = &personRefDTO{ID: v.HomeManager.ID, Name: v.HomeManager.Name}
	}
	if v.GuestManager != nil {
		dto.GuestManager = &personRefDTO{ID: v.GuestManager.ID, Name: v.GuestManager.Name}
	}
	for _, event := range v.Events {
		dto.Events = append(dto.Events, eventToDTO(event))
	}
	return dto
}
