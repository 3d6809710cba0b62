package person

import (
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
)

type TeamRef struct {
	ID   int64
	Name string
}

// Person is the shared identity behind players and managers.
type Person struct {
	ID        int64
	Name      string
	FullName  string
	BirthDate time.Time
	Country   league.Country
}

// PlayerDetails has a nullable team: unassigned players keep a nil Team and
// a nil TeamNumber, serialized as explicit nulls.
type PlayerDetails struct {
	Person
	TeamNumber *int
	Team       *TeamRef
}

type ManagerDetails struct {
	Person
	Team *TeamRef
}

// SeasonPlayer is one roster entry of a season view: every player whose team
// holds a standings row in the season.
type SeasonPlayer struct {
	ID         int64
	Name       string
	TeamNumber *int
	Team       TeamRef
}
