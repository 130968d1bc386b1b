package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cricket-scoring-service/internal/domain/entities"
	"cricket-scoring-service/internal/domain/match"
)

// Mongo persists documents in MongoDB. Scoring writes are expressed as
// single field-path updates ($push/$set at a computed nested index) so each
// one is atomic at the document level.
type Mongo struct {
	client  *mongo.Client
	matches *mongo.Collection
	players *mongo.Collection
	teams   *mongo.Collection
	umpires *mongo.Collection
}

// NewMongo connects to the given URI and returns a Mongo store over the
// named database, along with a disconnect function.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}
	db := client.Database(database)
	s := &Mongo{
		client:  client,
		matches: db.Collection("matches"),
		players: db.Collection("players"),
		teams:   db.Collection("teams"),
		umpires: db.Collection("umpires"),
	}
	return s, client.Disconnect, nil
}

var _ Store = (*Mongo)(nil)

func (s *Mongo) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Mongo) InsertMatch(ctx context.Context, m match.Match) error {
	_, err := s.matches.InsertOne(ctx, m)
	return err
}

func (s *Mongo) FindMatch(ctx context.Context, id, creator string) (match.Match, bool, error) {
	var m match.Match
	err := s.matches.FindOne(ctx, bson.M{"_id": id, "creator": creator}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return match.Match{}, false, nil
	}
	if err != nil {
		return match.Match{}, false, err
	}
	return m, true, nil
}

func (s *Mongo) ListMatches(ctx context.Context, creator string, f MatchFilter) ([]match.Match, error) {
	filter := bson.M{"creator": creator}
	if f.Done {
		filter["state"] = match.StateDone
	} else {
		filter["state"] = bson.M{"$ne": match.StateDone}
	}
	if f.Search != "" {
		search := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		if f.Done {
			filter["name"] = search
		} else {
			filter["$or"] = bson.A{bson.M{"name": search}, bson.M{"tags": search}}
		}
	}
	opts := options.Find()
	if f.Compact {
		opts.SetProjection(bson.M{"innings1": 0, "innings2": 0})
	}
	cursor, err := s.matches.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	matches := make([]match.Match, 0)
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *Mongo) ReplaceMatch(ctx context.Context, m match.Match) error {
	_, err := s.matches.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	return err
}

func (s *Mongo) DeleteMatch(ctx context.Context, id, creator string) (match.Match, bool, error) {
	var m match.Match
	err := s.matches.FindOneAndDelete(ctx, bson.M{"_id": id, "creator": creator}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return match.Match{}, false, nil
	}
	if err != nil {
		return match.Match{}, false, err
	}
	return m, true, nil
}

func (s *Mongo) MatchNameExists(ctx context.Context, creator, name, excludeID string) (bool, error) {
	filter := bson.M{
		"creator": creator,
		"name":    primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"},
	}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return s.exists(ctx, s.matches, filter)
}

func (s *Mongo) MatchTags(ctx context.Context, creator string) ([]string, error) {
	raw, err := s.matches.Distinct(ctx, "tags", bson.M{"creator": creator})
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if tag, ok := v.(string); ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (s *Mongo) DoneMatchesWithPlayer(ctx context.Context, creator, playerID string) ([]match.Match, error) {
	filter := bson.M{
		"creator": creator,
		"state":   match.StateDone,
		"$or": bson.A{
			bson.M{"team1Players": playerID},
			bson.M{"team2Players": playerID},
		},
	}
	cursor, err := s.matches.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	matches := make([]match.Match, 0)
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *Mongo) PushOver(ctx context.Context, id string, innings match.State, over match.Over) error {
	field := fmt.Sprintf("%s.overs", innings)
	_, err := s.matches.UpdateByID(ctx, id, bson.M{"$push": bson.M{field: over}})
	return err
}

func (s *Mongo) PushDelivery(ctx context.Context, id string, innings match.State, overIndex int, d match.Delivery) error {
	field := fmt.Sprintf("%s.overs.%d.bowls", innings, overIndex)
	_, err := s.matches.UpdateByID(ctx, id, bson.M{"$push": bson.M{field: d}})
	return err
}

func (s *Mongo) SetDelivery(ctx context.Context, id string, innings match.State, overIndex, bowlIndex int, d match.Delivery) error {
	field := fmt.Sprintf("%s.overs.%d.bowls.%d", innings, overIndex, bowlIndex)
	_, err := s.matches.UpdateByID(ctx, id, bson.M{"$set": bson.M{field: d}})
	return err
}

func (s *Mongo) InsertPlayer(ctx context.Context, p entities.Player) error {
	_, err := s.players.InsertOne(ctx, p)
	return err
}

func (s *Mongo) FindPlayer(ctx context.Context, id, creator string) (entities.Player, bool, error) {
	var p entities.Player
	err := s.players.FindOne(ctx, bson.M{"_id": id, "creator": creator, "isDeleted": false}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Player{}, false, nil
	}
	if err != nil {
		return entities.Player{}, false, err
	}
	return p, true, nil
}

func (s *Mongo) ListPlayers(ctx context.Context, creator, search string) ([]entities.Player, error) {
	filter := bson.M{"creator": creator, "isDeleted": false}
	if search != "" {
		or := bson.A{bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}}}
		if jersey, err := strconv.Atoi(search); err == nil {
			or = append(or, bson.M{"jerseyNo": jersey})
		}
		filter["$or"] = or
	}
	cursor, err := s.players.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	players := make([]entities.Player, 0)
	if err := cursor.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Mongo) UpdatePlayer(ctx context.Context, p entities.Player) (bool, error) {
	res, err := s.players.UpdateOne(ctx,
		bson.M{"_id": p.ID, "creator": p.Creator},
		bson.M{"$set": bson.M{"name": p.Name, "jerseyNo": p.JerseyNo}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Mongo) SoftDeletePlayer(ctx context.Context, id, creator string) (entities.Player, bool, error) {
	var p entities.Player
	err := s.players.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "creator": creator, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true}},
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Player{}, false, nil
	}
	if err != nil {
		return entities.Player{}, false, err
	}
	return p, true, nil
}

func (s *Mongo) PlayerExists(ctx context.Context, id, creator string) (bool, error) {
	return s.exists(ctx, s.players, bson.M{"_id": id, "creator": creator, "isDeleted": false})
}

func (s *Mongo) PlayerNameExists(ctx context.Context, creator, name, excludeID string) (bool, error) {
	filter := bson.M{
		"creator":   creator,
		"isDeleted": false,
		"name":      primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"},
	}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return s.exists(ctx, s.players, filter)
}

func (s *Mongo) PlayerJerseyExists(ctx context.Context, creator string, jerseyNo int, excludeID string) (bool, error) {
	filter := bson.M{"creator": creator, "isDeleted": false, "jerseyNo": jerseyNo}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return s.exists(ctx, s.players, filter)
}

func (s *Mongo) InsertTeam(ctx context.Context, t entities.Team) error {
	_, err := s.teams.InsertOne(ctx, t)
	return err
}

func (s *Mongo) ListTeams(ctx context.Context, creator, search string) ([]entities.Team, error) {
	filter := bson.M{"creator": creator}
	if search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{bson.M{"name": re}, bson.M{"shortName": re}}
	}
	cursor, err := s.teams.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	teams := make([]entities.Team, 0)
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *Mongo) UpdateTeam(ctx context.Context, t entities.Team) (bool, error) {
	res, err := s.teams.UpdateOne(ctx,
		bson.M{"_id": t.ID, "creator": t.Creator},
		bson.M{"$set": bson.M{"name": t.Name, "shortName": t.ShortName}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Mongo) DeleteTeam(ctx context.Context, id, creator string) (entities.Team, bool, error) {
	var t entities.Team
	err := s.teams.FindOneAndDelete(ctx, bson.M{"_id": id, "creator": creator}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Team{}, false, nil
	}
	if err != nil {
		return entities.Team{}, false, err
	}
	return t, true, nil
}

func (s *Mongo) TeamExists(ctx context.Context, id, creator string) (bool, error) {
	return s.exists(ctx, s.teams, bson.M{"_id": id, "creator": creator})
}

func (s *Mongo) InsertUmpire(ctx context.Context, u entities.Umpire) error {
	_, err := s.umpires.InsertOne(ctx, u)
	return err
}

func (s *Mongo) ListUmpires(ctx context.Context, creator string) ([]entities.Umpire, error) {
	cursor, err := s.umpires.Find(ctx, bson.M{"creator": creator})
	if err != nil {
		return nil, err
	}
	umpires := make([]entities.Umpire, 0)
	if err := cursor.All(ctx, &umpires); err != nil {
		return nil, err
	}
	return umpires, nil
}

func (s *Mongo) UpdateUmpire(ctx context.Context, u entities.Umpire) (bool, error) {
	res, err := s.umpires.UpdateOne(ctx,
		bson.M{"_id": u.ID, "creator": u.Creator},
		bson.M{"$set": bson.M{"name": u.Name}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Mongo) DeleteUmpire(ctx context.Context, id, creator string) (entities.Umpire, bool, error) {
	var u entities.Umpire
	err := s.umpires.FindOneAndDelete(ctx, bson.M{"_id": id, "creator": creator}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Umpire{}, false, nil
	}
	if err != nil {
		return entities.Umpire{}, false, err
	}
	return u, true, nil
}

func (s *Mongo) UmpireExists(ctx context.Context, id, creator string) (bool, error) {
	return s.exists(ctx, s.umpires, bson.M{"_id": id, "creator": creator})
}

func (s *Mongo) exists(ctx context.Context, coll *mongo.Collection, filter bson.M) (bool, error) {
	count, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
