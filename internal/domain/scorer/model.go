package scorer

type TeamRef struct {
	ID   int64
	Name string
}

// PlayerSeasonStats is one row of the top-scorers view. TeamNumber is not
// resolved during aggregation and stays nil here.
type PlayerSeasonStats struct {
	ID               int64
	Name             string
	Team             TeamRef
	TeamNumber       *int
	Games            int
	EffectiveActions int
}
