package mongodb

import (
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
)

type teamSnapshotModel struct {
	ID   int64  `bson:"id"`
	Name string `bson:"name"`
}

func (m teamSnapshotModel) toDomain() matchdoc.TeamSnapshot {
	return matchdoc.TeamSnapshot{ID: m.ID, Name: m.Name}
}

type personSnapshotModel struct {
	ID   int64             `bson:"id"`
	Name string            `bson:"name"`
	Team teamSnapshotModel `bson:"team"`
}

func (m personSnapshotModel) toDomain() matchdoc.PersonSnapshot {
	return matchdoc.PersonSnapshot{ID: m.ID, Name: m.Name, Team: m.Team.toDomain()}
}

type eventModel struct {
	Type   string              `bson:"event_type"`
	Minute string              `bson:"minute"`
	Person personSnapshotModel `bson:"person"`
}

func (m eventModel) toDomain() matchdoc.Event {
	return matchdoc.Event{
		Type:   matchdoc.EventType(m.Type),
		Minute: m.Minute,
		Person: m.Person.toDomain(),
	}
}

type matchDocumentModel struct {
	GameID            int64                 `bson:"game_id"`
	SeasonID          int64                 `bson:"season_id"`
	LeagueID          int64                 `bson:"league_id"`
	HomeStart         []personSnapshotModel `bson:"home_start_composition"`
	GuestStart        []personSnapshotModel `bson:"guest_start_composition"`
	HomeSubstitution  []personSnapshotModel `bson:"home_substitution"`
	GuestSubstitution []personSnapshotModel `bson:"guest_substitution"`
	HomeManager       *personSnapshotModel  `bson:"home_manager"`
	GuestManager      *personSnapshotModel  `bson:"guest_manager"`
	Events            []eventModel          `bson:"events"`
}

func (m matchDocumentModel) toDomain() matchdoc.Document {
	doc := matchdoc.Document{
		GameID:            m.GameID,
		SeasonID:          m.SeasonID,
		LeagueID:          m.LeagueID,
		HomeStart:         snapshotsToDomain(m.HomeStart),
		GuestStart:        snapshotsToDomain(m.GuestStart),
		HomeSubstitution:  snapshotsToDomain(m.HomeSubstitution),
		GuestSubstitution: snapshotsToDomain(m.GuestSubstitution),
		Events:            make([]matchdoc.Event, 0, len(m.Events)),
	}
	if m.HomeManager != nil {
		manager := m.HomeManager.toDomain()
		doc.HomeManager = &manager
	}
	if m.GuestManager != nil {
		manager := m.GuestManager.toDomain()
		doc.GuestManager = &manager
	}
	for _, event := range m.Events {
		doc.Events = append(doc.Events, event.toDomain())
	}
	return doc
}

func snapshotsToDomain(models []personSnapshotModel) []matchdoc.PersonSnapshot {
	out := make([]matchdoc.PersonSnapshot, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out
}

// playerGroupKey is the compound _id produced by the aggregation's $group
// stage; sorting on _id.player_id keeps the output ordered for merge joins.
type playerGroupKey struct {
	PlayerID   int64  `bson:"player_id"`
	PlayerName string `bson:"player_name"`
	TeamID     int64  `bson:"team_id"`
	TeamName   string `bson:"team_name"`
}

type playerGroupRow struct {
	Key   playerGroupKey `bson:"_id"`
	Count int            `bson:"count"`
}

func (r playerGroupRow) toDomain() matchdoc.PlayerAggregate {
	return matchdoc.PlayerAggregate{
		PlayerID:   r.Key.PlayerID,
		PlayerName: r.Key.PlayerName,
		TeamID:     r.Key.TeamID,
		TeamName:   r.Key.TeamName,
		Count:      r.Count,
	}
}
