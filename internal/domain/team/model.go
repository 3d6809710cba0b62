package team

import "github.com/riskibarqy/football-data/internal/domain/league"

type Team struct {
	ID      int64
	Name    string
	Founded string
}

// ManagerRef is the denormalized manager identity carried by team views.
type ManagerRef struct {
	ID   int64
	Name string
}

type PlayerRef struct {
	ID         int64
	Name       string
	TeamNumber *int
}

// Details is the list-view shape: team identity plus optional manager.
type Details struct {
	Team
	Manager *ManagerRef
}

// Relations is the full team subtree: country, season memberships, roster
// and manager. Manager is nil when the team has none.
type Relations struct {
	Team
	Country league.Country
	Manager *ManagerRef
	Seasons []league.Season
	Players []PlayerRef
}
