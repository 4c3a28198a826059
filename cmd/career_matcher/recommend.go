package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-matcher/internal/catalog"
	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/recommend"
	"github.com/jonathan/career-matcher/internal/sectors"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Produce unified recommendations from resume text",
	Long:  "Extracts a profile from resume text and ranks occupations, job postings, and training programs from the catalogs, producing a unified recommendation JSON.",
	RunE:  runRecommend,
}

var (
	recommendResumeFile string
	recommendResumeText string
	recommendSectors    []string
	recommendCatalogDir string
	recommendSchemaDir  string
	recommendDatabase   string
	recommendOutput     string
	recommendVerbose    bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendResumeFile, "resume", "r", "", "Path to resume text file")
	recommendCmd.Flags().StringVarP(&recommendResumeText, "text", "t", "", "Inline resume text")
	recommendCmd.Flags().StringSliceVarP(&recommendSectors, "sectors", "s", nil, "Chosen sector names (defaults to the top 2 classified sectors)")
	recommendCmd.Flags().StringVarP(&recommendCatalogDir, "catalogs", "c", "", "Directory with catalog JSON files")
	recommendCmd.Flags().StringVar(&recommendSchemaDir, "schemas", "schemas", "Directory with catalog JSON schemas")
	recommendCmd.Flags().StringVar(&recommendDatabase, "database-url", "", "PostgreSQL catalog store URL (alternative to --catalogs)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	resumeText, err := readResumeText(recommendResumeFile, recommendResumeText)
	if err != nil {
		return err
	}
	if resumeText == "" {
		return fmt.Errorf("either --resume or --text is required")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if recommendCatalogDir == "" {
		recommendCatalogDir = cfg.CatalogDir
	}
	if recommendDatabase == "" {
		recommendDatabase = cfg.DatabaseURL
	}
	if cfg.SchemaDir != "" && !cmd.Flags().Changed("schemas") {
		recommendSchemaDir = cfg.SchemaDir
	}

	catalogs, err := loadCatalogs(recommendCatalogDir, recommendSchemaDir, recommendDatabase)
	if err != nil {
		return err
	}

	chosenSectors := recommendSectors
	if len(chosenSectors) == 0 {
		topK := sectors.DefaultTopK
		if cfg.TopSectors > 0 {
			topK = cfg.TopSectors
		}
		for _, score := range sectors.Rank(resumeText, topK) {
			chosenSectors = append(chosenSectors, score.Sector)
		}
	}

	result := recommend.Unified(resumeText, chosenSectors, recommend.Catalogs{
		Occupations: catalogs.Occupations,
		Jobs:        catalogs.Jobs,
		Programs:    catalogs.Programs,
	})

	if recommendVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(&result.Profile)
		printer.PrintRecommendations(&result)
	}

	return writeJSONOutput(recommendOutput, result)
}

// loadCatalogs reads reference data from the file directory or the database,
// whichever is configured.
func loadCatalogs(dir, schemaDir, databaseURL string) (*catalog.Catalogs, error) {
	if databaseURL != "" {
		ctx := context.Background()
		store, err := catalog.Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadAll(ctx)
	}

	if dir == "" {
		return nil, fmt.Errorf("either --catalogs or --database-url is required")
	}
	return catalog.LoadFromDir(dir, schemaDir)
}
