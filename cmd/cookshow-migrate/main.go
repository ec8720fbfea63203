package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cuemby/cookshow/pkg/log"
	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cookshow-migrate",
	Short: "Copy a cookshow bolt database into MongoDB",
	Long: `Copy every chef, viewer, participant and recipe from a bolt data
directory into a MongoDB database. Documents keep their IDs, so running the
migration twice overwrites rather than duplicates.`,
	SilenceUsage: true,
	RunE:         runMigrate,
}

func init() {
	rootCmd.Flags().String("data-dir", "/var/lib/cookshow", "Cookshow bolt data directory")
	rootCmd.Flags().String("mongo-uri", "", "MongoDB connection URI (required)")
	rootCmd.Flags().String("mongo-database", "cookshow", "MongoDB database name")
	rootCmd.Flags().Bool("dry-run", false, "Show what would be migrated without making changes")
	rootCmd.Flags().String("backup", "", "Path to backup the database before migration (default: <data-dir>/cookshow.db.backup)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	mongoURI, _ := cmd.Flags().GetString("mongo-uri")
	mongoDB, _ := cmd.Flags().GetString("mongo-database")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	backupPath, _ := cmd.Flags().GetString("backup")

	log.Init(log.Config{Level: log.InfoLevel})
	logger := log.WithComponent("migrate")

	dbPath := filepath.Join(dataDir, storage.DBFile)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("database not found at %s", dbPath)
	}
	logger.Info().Str("database", dbPath).Bool("dry_run", dryRun).Msg("Starting migration")

	if !dryRun {
		if mongoURI == "" {
			return fmt.Errorf("--mongo-uri is required")
		}
		if backupPath == "" {
			backupPath = dbPath + ".backup"
		}
		if err := copyFile(dbPath, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		logger.Info().Str("backup", backupPath).Msg("✓ Backup created")
	}

	src, err := storage.NewBoltStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer src.Close()

	var dst storage.Store
	if !dryRun {
		mongo, err := storage.NewMongoStore(storage.MongoConfig{URI: mongoURI, Database: mongoDB})
		if err != nil {
			return err
		}
		defer mongo.Close()
		dst = mongo
	}

	counts, err := migrate(src, dst)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	event := logger.Info().
		Int("chefs", counts.Chefs).
		Int("viewers", counts.Viewers).
		Int("participants", counts.Participants).
		Int("recipes", counts.Recipes)
	if dryRun {
		event.Msg("Dry run completed, no changes made")
	} else {
		event.Str("mongo_database", mongoDB).Msg("✓ Migration completed")
	}
	return nil
}

// Counts records how many documents of each collection were copied
type Counts struct {
	Chefs        int
	Viewers      int
	Participants int
	Recipes      int
}

// migrate copies every collection from src to dst. A nil dst only counts.
func migrate(src, dst storage.Store) (Counts, error) {
	var counts Counts

	chefs, err := src.ListChefs()
	if err != nil {
		return counts, fmt.Errorf("list chefs: %w", err)
	}
	viewers, err := src.ListViewers()
	if err != nil {
		return counts, fmt.Errorf("list viewers: %w", err)
	}
	participants, err := src.ListParticipants()
	if err != nil {
		return counts, fmt.Errorf("list participants: %w", err)
	}
	recipes, err := src.ListRecipes()
	if err != nil {
		return counts, fmt.Errorf("list recipes: %w", err)
	}

	if dst == nil {
		return Counts{len(chefs), len(viewers), len(participants), len(recipes)}, nil
	}

	for _, c := range chefs {
		if err := dst.CreateChef(c); err != nil {
			return counts, fmt.Errorf("copy chef %s: %w", c.ID, err)
		}
		counts.Chefs++
	}
	for _, v := range viewers {
		if err := dst.CreateViewer(v); err != nil {
			return counts, fmt.Errorf("copy viewer %s: %w", v.ID, err)
		}
		counts.Viewers++
	}
	for _, p := range participants {
		if err := dst.CreateParticipant(p); err != nil {
			return counts, fmt.Errorf("copy participant %s: %w", p.ID, err)
		}
		counts.Participants++
	}
	for _, r := range recipes {
		if err := dst.CreateRecipe(r); err != nil {
			return counts, fmt.Errorf("copy recipe %s: %w", r.ID, err)
		}
		counts.Recipes++
	}
	return counts, nil
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, input, 0600)
}
