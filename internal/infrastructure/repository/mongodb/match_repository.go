package mongodb

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-data/internal/domain/matchdoc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const matchCollection = "games"

// MatchRepository reads denormalized match documents. Both season-wide
// aggregations push the grouping into the store and return rows sorted
// ascending by player id.
type MatchRepository struct {
	coll *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{coll: db.Collection(matchCollection)}
}

func (r *MatchRepository) GetByGameID(ctx context.Context, gameID int64) (matchdoc.Document, bool, error) {
	var model matchDocumentModel
	err := r.coll.FindOne(ctx, bson.M{"game_id": gameID}).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return matchdoc.Document{}, false, nil
		}
		return matchdoc.Document{}, false, errors.Wrapf(err, "find match document for game %d", gameID)
	}
	return model.toDomain(), true, nil
}

// AppearancesBySeason counts, per player, the games where the player is in a
// start composition. Substitution lists do not count as appearances.
func (r *MatchRepository) AppearancesBySeason(ctx context.Context, seasonID int64) ([]matchdoc.PlayerAggregate, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"season_id": seasonID}}},
		bson.D{{Key: "$project", Value: bson.M{
			"players": bson.M{"$concatArrays": bson.A{"$home_start_composition", "$guest_start_composition"}},
		}}},
		bson.D{{Key: "$unwind", Value: "$players"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"player_id":   "$players.id",
				"player_name": "$players.name",
				"team_id":     "$players.team.id",
				"team_name":   "$players.team.name",
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id.player_id": 1}}},
	}

	rows, err := r.aggregatePlayers(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregate appearances for season %d", seasonID)
	}
	return rows, nil
}

// EffectiveActionsBySeason counts, per player, the events whose type is in
// the given set.
func (r *MatchRepository) EffectiveActionsBySeason(ctx context.Context, seasonID int64, types []matchdoc.EventType) ([]matchdoc.PlayerAggregate, error) {
	typeValues := make(bson.A, 0, len(types))
	for _, t := range types {
		typeValues = append(typeValues, string(t))
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"season_id": seasonID}}},
		bson.D{{Key: "$unwind", Value: "$events"}},
		bson.D{{Key: "$match", Value: bson.M{"events.event_type": bson.M{"$in": typeValues}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"player_id":   "$events.person.id",
				"player_name": "$events.person.name",
				"team_id":     "$events.person.team.id",
				"team_name":   "$events.person.team.name",
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id.player_id": 1}}},
	}

	rows, err := r.aggregatePlayers(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregate effective actions for season %d", seasonID)
	}
	return rows, nil
}

func (r *MatchRepository) aggregatePlayers(ctx context.Context, pipeline mongo.Pipeline) ([]matchdoc.PlayerAggregate, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var rows []playerGroupRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]matchdoc.PlayerAggregate, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
