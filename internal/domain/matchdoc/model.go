package matchdoc

import (
	"fmt"
	"strings"
)

// EventType enumerates the match events carried by game documents.
type EventType string

const (
	EventGoal                  EventType = "goal"
	EventOwnGoal               EventType = "own_goal"
	EventAssist                EventType = "assist"
	EventPenaltyGoal           EventType = "penalty_goal"
	EventUnrealizedPenaltyGoal EventType = "unrealized_penalty_goal"
	EventYellowCard            EventType = "yellow_card"
	EventRedCard               EventType = "red_card"
)

var knownEventTypes = map[EventType]struct{}{
	EventGoal:                  {},
	EventOwnGoal:               {},
	EventAssist:                {},
	EventPenaltyGoal:           {},
	EventUnrealizedPenaltyGoal: {},
	EventYellowCard:            {},
	EventRedCard:               {},
}

func ParseEventType(raw string) (EventType, error) {
	candidate := EventType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := knownEventTypes[candidate]; !ok {
		return "", fmt.Errorf("unknown event type %q", raw)
	}
	return candidate, nil
}

// DefaultScorerEvents is the effective-actions filter used when none is
// configured.
func DefaultScorerEvents() []EventType {
	return []EventType{EventGoal, EventPenaltyGoal}
}

// TeamSnapshot is the denormalized team identity embedded in a document,
// valid as of match time.
type TeamSnapshot struct {
	ID   int64
	Name string
}

type PersonSnapshot struct {
	ID   int64
	Name string
	Team TeamSnapshot
}

type Event struct {
	Type   EventType
	Minute string
	Person PersonSnapshot
}

// Document is one per game, keyed by the relational game id. The linkage is
// a lookup-by-key contract: neither store enforces it, and an absent
// document degrades to empty compositions rather than an error.
type Document struct {
	GameID            int64
	SeasonID          int64
	LeagueID          int64
	HomeStart         []PersonSnapshot
	GuestStart        []PersonSnapshot
	HomeSubstitution  []PersonSnapshot
	GuestSubstitution []PersonSnapshot
	HomeManager       *PersonSnapshot
	GuestManager      *PersonSnapshot
	Events            []Event
}

// PlayerAggregate is one grouped row of a season aggregation, keyed by the
// (player id, player name, team id, team name) composite identity.
type PlayerAggregate struct {
	PlayerID   int64
	PlayerName string
	TeamID     int64
	TeamName   string
	Count      int
}
