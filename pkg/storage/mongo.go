package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cuemby/cookshow/pkg/metrics"
	"github.com/cuemby/cookshow/pkg/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, kept compatible with existing cookshow databases
const (
	CollectionChefs        = "Chefs"
	CollectionViewers      = "Viewers"
	CollectionParticipants = "Participants"
	CollectionRecipes      = "Recipes"
)

// DefaultMongoTimeout bounds every MongoDB round trip
const DefaultMongoTimeout = 10 * time.Second

// MongoConfig holds the connection settings for MongoStore
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// MongoStore implements Store on top of a MongoDB database
type MongoStore struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore connects to MongoDB and verifies the connection
func NewMongoStore(cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo database is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultMongoTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStore{
		client:  client,
		db:      client.Database(cfg.Database),
		timeout: timeout,
	}, nil
}

func (s *MongoStore) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Close disconnects the client
func (s *MongoStore) Close() error {
	ctx, cancel := s.opContext()
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping checks the primary is reachable
func (s *MongoStore) Ping() error {
	ctx, cancel := s.opContext()
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) upsert(op, collection, id string, doc interface{}) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	ctx, cancel := s.opContext()
	defer cancel()

	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc,
		options.Replace().SetUpsert(true))
	return err
}

func (s *MongoStore) deleteOne(op, collection, id string) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	ctx, cancel := s.opContext()
	defer cancel()

	_, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func findOne[T any](s *MongoStore, op, collection string, filter bson.M, key string) (*T, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	ctx, cancel := s.opContext()
	defer cancel()

	var item T
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s %s: %w", collection, key, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func findMany[T any](s *MongoStore, op, collection string, filter bson.M) ([]*T, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	ctx, cancel := s.opContext()
	defer cancel()

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := []*T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

func byID(id string) bson.M { return bson.M{"_id": id} }

func byName(fullName string) bson.M { return bson.M{"fullName": fullName} }

// Chef operations
func (s *MongoStore) CreateChef(chef *types.Chef) error {
	return s.upsert("create_chef", CollectionChefs, chef.ID, chef)
}

func (s *MongoStore) GetChef(id string) (*types.Chef, error) {
	return findOne[types.Chef](s, "get_chef", CollectionChefs, byID(id), id)
}

func (s *MongoStore) GetChefByName(fullName string) (*types.Chef, error) {
	return findOne[types.Chef](s, "get_chef_by_name", CollectionChefs, byName(fullName), fullName)
}

func (s *MongoStore) ListChefs() ([]*types.Chef, error) {
	return findMany[types.Chef](s, "list_chefs", CollectionChefs, bson.M{})
}

func (s *MongoStore) UpdateChef(chef *types.Chef) error {
	return s.CreateChef(chef)
}

func (s *MongoStore) DeleteChef(id string) error {
	return s.deleteOne("delete_chef", CollectionChefs, id)
}

// Viewer operations
func (s *MongoStore) CreateViewer(viewer *types.Viewer) error {
	return s.upsert("create_viewer", CollectionViewers, viewer.ID, viewer)
}

func (s *MongoStore) GetViewer(id string) (*types.Viewer, error) {
	return findOne[types.Viewer](s, "get_viewer", CollectionViewers, byID(id), id)
}

func (s *MongoStore) GetViewerByName(fullName string) (*types.Viewer, error) {
	return findOne[types.Viewer](s, "get_viewer_by_name", CollectionViewers, byName(fullName), fullName)
}

func (s *MongoStore) ListViewers() ([]*types.Viewer, error) {
	return findMany[types.Viewer](s, "list_viewers", CollectionViewers, bson.M{})
}

func (s *MongoStore) UpdateViewer(viewer *types.Viewer) error {
	return s.CreateViewer(viewer)
}

func (s *MongoStore) DeleteViewer(id string) error {
	return s.deleteOne("delete_viewer", CollectionViewers, id)
}

// Participant operations
func (s *MongoStore) CreateParticipant(participant *types.Participant) error {
	return s.upsert("create_participant", CollectionParticipants, participant.ID, participant)
}

func (s *MongoStore) GetParticipant(id string) (*types.Participant, error) {
	return findOne[types.Participant](s, "get_participant", CollectionParticipants, byID(id), id)
}

func (s *MongoStore) GetParticipantByName(fullName string) (*types.Participant, error) {
	return findOne[types.Participant](s, "get_participant_by_name", CollectionParticipants, byName(fullName), fullName)
}

func (s *MongoStore) ListParticipants() ([]*types.Participant, error) {
	return findMany[types.Participant](s, "list_participants", CollectionParticipants, bson.M{})
}

func (s *MongoStore) ListParticipantsBySeason(season int) ([]*types.Participant, error) {
	return findMany[types.Participant](s, "list_participants_by_season", CollectionParticipants,
		bson.M{"season": season})
}

func (s *MongoStore) UpdateParticipant(participant *types.Participant) error {
	return s.CreateParticipant(participant)
}

func (s *MongoStore) DeleteParticipant(id string) error {
	return s.deleteOne("delete_participant", CollectionParticipants, id)
}

// Recipe operations
func (s *MongoStore) CreateRecipe(recipe *types.Recipe) error {
	return s.upsert("create_recipe", CollectionRecipes, recipe.ID, recipe)
}

func (s *MongoStore) GetRecipe(id string) (*types.Recipe, error) {
	return findOne[types.Recipe](s, "get_recipe", CollectionRecipes, byID(id), id)
}

func (s *MongoStore) GetRecipeByAuthor(author string) (*types.Recipe, error) {
	return findOne[types.Recipe](s, "get_recipe_by_author", CollectionRecipes, bson.M{"author": author}, author)
}

func (s *MongoStore) GetRecipeByNum(num int) (*types.Recipe, error) {
	return findOne[types.Recipe](s, "get_recipe_by_num", CollectionRecipes, bson.M{"num": num}, fmt.Sprintf("#%d", num))
}

func (s *MongoStore) ListRecipes() ([]*types.Recipe, error) {
	return findMany[types.Recipe](s, "list_recipes", CollectionRecipes, bson.M{})
}

func (s *MongoStore) ListRecipesByIngredient(ingredient string) ([]*types.Recipe, error) {
	return findMany[types.Recipe](s, "list_recipes_by_ingredient", CollectionRecipes, ingredientFilter(ingredient))
}

// ingredientFilter matches documents whose ingredients array holds the exact element
func ingredientFilter(ingredient string) bson.M {
	return bson.M{"ingredients": bson.M{"$in": bson.A{ingredient}}}
}

func (s *MongoStore) UpdateRecipe(recipe *types.Recipe) error {
	return s.CreateRecipe(recipe)
}

func (s *MongoStore) DeleteRecipe(id string) error {
	return s.deleteOne("delete_recipe", CollectionRecipes, id)
}
