package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cuemby/cookshow/pkg/metrics"
	"github.com/cuemby/cookshow/pkg/types"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketChefs        = []byte("chefs")
	bucketViewers      = []byte("viewers")
	bucketParticipants = []byte("participants")
	bucketRecipes      = []byte("recipes")
)

// Buckets lists every bucket the store creates, in a stable order
var Buckets = [][]byte{
	bucketChefs,
	bucketViewers,
	bucketParticipants,
	bucketRecipes,
}

// DBFile is the database file name inside the data directory
const DBFile = "cookshow.db"

// BoltStore implements Store interface using BoltDB
type BoltStore struct {
	db *bolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore creates a new BoltDB-backed store
func NewBoltStore(dataDir string) (*BoltStore, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, DBFile)

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range Buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database can serve a read transaction
func (s *BoltStore) Ping() error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketRecipes) == nil {
			return fmt.Errorf("bucket %s missing", bucketRecipes)
		}
		return nil
	})
}

func (s *BoltStore) put(op string, bucket []byte, id string, v interface{}) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return tx.Bucket(bucket).Put([]byte(id), data)
	})
}

func (s *BoltStore) get(op string, bucket []byte, id string, v interface{}) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	return s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%s %s: %w", bucket, id, ErrNotFound)
		}
		return json.Unmarshal(data, v)
	})
}

func (s *BoltStore) remove(op string, bucket []byte, id string) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(id))
	})
}

// scan decodes every value of a bucket in key order and hands it to fn.
// Returning errStopScan from fn ends the iteration early without error.
func scan[T any](s *BoltStore, op string, bucket []byte, fn func(*T) error) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, op)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, v []byte) error {
			var item T
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to decode %s/%s: %w", bucket, k, err)
			}
			return fn(&item)
		})
	})
	if errors.Is(err, errStopScan) {
		return nil
	}
	return err
}

var errStopScan = errors.New("stop scan")

// findFirst returns the first record matching pred or an ErrNotFound error
func findFirst[T any](s *BoltStore, op string, bucket []byte, key string, pred func(*T) bool) (*T, error) {
	var found *T
	err := scan(s, op, bucket, func(item *T) error {
		if pred(item) {
			found = item
			return errStopScan
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%s %s: %w", bucket, key, ErrNotFound)
	}
	return found, nil
}

// filter returns every record matching pred; an empty result is not an error
func filter[T any](s *BoltStore, op string, bucket []byte, pred func(*T) bool) ([]*T, error) {
	items := []*T{}
	err := scan(s, op, bucket, func(item *T) error {
		if pred(item) {
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func all[T any](*T) bool { return true }

// Chef operations
func (s *BoltStore) CreateChef(chef *types.Chef) error {
	return s.put("create_chef", bucketChefs, chef.ID, chef)
}

func (s *BoltStore) GetChef(id string) (*types.Chef, error) {
	var chef types.Chef
	if err := s.get("get_chef", bucketChefs, id, &chef); err != nil {
		return nil, err
	}
	return &chef, nil
}

func (s *BoltStore) GetChefByName(fullName string) (*types.Chef, error) {
	return findFirst(s, "get_chef_by_name", bucketChefs, fullName, func(c *types.Chef) bool {
		return c.FullName == fullName
	})
}

func (s *BoltStore) ListChefs() ([]*types.Chef, error) {
	return filter(s, "list_chefs", bucketChefs, all[types.Chef])
}

func (s *BoltStore) UpdateChef(chef *types.Chef) error {
	return s.CreateChef(chef) // Same as create (upsert)
}

func (s *BoltStore) DeleteChef(id string) error {
	return s.remove("delete_chef", bucketChefs, id)
}

// Viewer operations
func (s *BoltStore) CreateViewer(viewer *types.Viewer) error {
	return s.put("create_viewer", bucketViewers, viewer.ID, viewer)
}

func (s *BoltStore) GetViewer(id string) (*types.Viewer, error) {
	var viewer types.Viewer
	if err := s.get("get_viewer", bucketViewers, id, &viewer); err != nil {
		return nil, err
	}
	return &viewer, nil
}

func (s *BoltStore) GetViewerByName(fullName string) (*types.Viewer, error) {
	return findFirst(s, "get_viewer_by_name", bucketViewers, fullName, func(v *types.Viewer) bool {
		return v.FullName == fullName
	})
}

func (s *BoltStore) ListViewers() ([]*types.Viewer, error) {
	return filter(s, "list_viewers", bucketViewers, all[types.Viewer])
}

func (s *BoltStore) UpdateViewer(viewer *types.Viewer) error {
	return s.CreateViewer(viewer)
}

func (s *BoltStore) DeleteViewer(id string) error {
	return s.remove("delete_viewer", bucketViewers, id)
}

// Participant operations
func (s *BoltStore) CreateParticipant(participant *types.Participant) error {
	return s.put("create_participant", bucketParticipants, participant.ID, participant)
}

func (s *BoltStore) GetParticipant(id string) (*types.Participant, error) {
	var participant types.Participant
	if err := s.get("get_participant", bucketParticipants, id, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *BoltStore) GetParticipantByName(fullName string) (*types.Participant, error) {
	return findFirst(s, "get_participant_by_name", bucketParticipants, fullName, func(p *types.Participant) bool {
		return p.FullName == fullName
	})
}

func (s *BoltStore) ListParticipants() ([]*types.Participant, error) {
	return filter(s, "list_participants", bucketParticipants, all[types.Participant])
}

func (s *BoltStore) ListParticipantsBySeason(season int) ([]*types.Participant, error) {
	return filter(s, "list_participants_by_season", bucketParticipants, func(p *types.Participant) bool {
		return p.Season == season
	})
}

func (s *BoltStore) UpdateParticipant(participant *types.Participant) error {
	return s.CreateParticipant(participant)
}

func (s *BoltStore) DeleteParticipant(id string) error {
	return s.remove("delete_participant", bucketParticipants, id)
}

// Recipe operations
func (s *BoltStore) CreateRecipe(recipe *types.Recipe) error {
	return s.put("create_recipe", bucketRecipes, recipe.ID, recipe)
}

func (s *BoltStore) GetRecipe(id string) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := s.get("get_recipe", bucketRecipes, id, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *BoltStore) GetRecipeByAuthor(author string) (*types.Recipe, error) {
	return findFirst(s, "get_recipe_by_author", bucketRecipes, author, func(r *types.Recipe) bool {
		return r.Author == author
	})
}

func (s *BoltStore) GetRecipeByNum(num int) (*types.Recipe, error) {
	return findFirst(s, "get_recipe_by_num", bucketRecipes, fmt.Sprintf("#%d", num), func(r *types.Recipe) bool {
		return r.Num == num
	})
}

func (s *BoltStore) ListRecipes() ([]*types.Recipe, error) {
	return filter(s, "list_recipes", bucketRecipes, all[types.Recipe])
}

func (s *BoltStore) ListRecipesByIngredient(ingredient string) ([]*types.Recipe, error) {
	return filter(s, "list_recipes_by_ingredient", bucketRecipes, func(r *types.Recipe) bool {
		return r.HasIngredient(ingredient)
	})
}

func (s *BoltStore) UpdateRecipe(recipe *types.Recipe) error {
	return s.CreateRecipe(recipe)
}

func (s *BoltStore) DeleteRecipe(id string) error {
	return s.remove("delete_recipe", bucketRecipes, id)
}
