package league

// Country is immutable reference data shared by leagues, teams and persons.
type Country struct {
	ID   int64
	Name string
}

// League is a national competition owning its seasons.
type League struct {
	ID            int64
	Name          string
	Country       Country
	CurrentSeason *Season
}

type Season struct {
	ID        int64
	Name      string
	LeagueID  int64
	IsCurrent bool
}

// SeasonLeader is the team holding position 1 in the season standings.
// Nil when the season has no standings rows yet.
type SeasonLeader struct {
	TeamID   int64
	TeamName string
}

type SeasonWithLeader struct {
	Season
	Leader *SeasonLeader
}

// Standing is one team's ranked row within one season. At most one row per
// (season, team); position is a dense rank starting at 1.
type Standing struct {
	SeasonID      int64
	TeamID        int64
	TeamName      string
	Position      int
	Games         int
	Wins          int
	Draws         int
	Loses         int
	ScoredGoals   int
	ConcededGoals int
	Points        int
}
