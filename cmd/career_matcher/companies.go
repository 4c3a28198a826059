package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-matcher/internal/companies"
	"github.com/jonathan/career-matcher/internal/observability"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/spf13/cobra"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Match a candidate against companies",
	Long:  "Scores companies against a candidate profile with a field/experience/education/employment breakdown plus certification bonus, producing a ranked company match JSON.",
	RunE:  runCompanies,
}

var (
	companiesCandidateFile string
	companiesCategories    []string
	companiesCatalogDir    string
	companiesSchemaDir     string
	companiesDatabase      string
	companiesOutput        string
	companiesVerbose       bool
)

func init() {
	companiesCmd.Flags().StringVarP(&companiesCandidateFile, "candidate", "p", "", "Path to candidate profile JSON file (required)")
	companiesCmd.Flags().StringSliceVarP(&companiesCategories, "categories", "g", nil, "Selected job categories")
	companiesCmd.Flags().StringVarP(&companiesCatalogDir, "catalogs", "c", "", "Directory with catalog JSON files")
	companiesCmd.Flags().StringVar(&companiesSchemaDir, "schemas", "schemas", "Directory with catalog JSON schemas")
	companiesCmd.Flags().StringVar(&companiesDatabase, "database-url", "", "PostgreSQL catalog store URL (alternative to --catalogs)")
	companiesCmd.Flags().StringVarP(&companiesOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	companiesCmd.Flags().BoolVarP(&companiesVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	if err := companiesCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(companiesCmd)
}

func runCompanies(cmd *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := loadJSONFile(companiesCandidateFile, &candidate); err != nil {
		return err
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if companiesCatalogDir == "" {
		companiesCatalogDir = cfg.CatalogDir
	}
	if companiesDatabase == "" {
		companiesDatabase = cfg.DatabaseURL
	}
	if cfg.SchemaDir != "" && !cmd.Flags().Changed("schemas") {
		companiesSchemaDir = cfg.SchemaDir
	}

	catalogs, err := loadCatalogs(companiesCatalogDir, companiesSchemaDir, companiesDatabase)
	if err != nil {
		return err
	}

	matches := companies.Match(candidate, companiesCategories, catalogs.Companies)

	if companiesVerbose {
		observability.NewPrinter(os.Stderr).PrintCompanyMatches(matches)
	}

	return writeJSONOutput(companiesOutput, matches)
}
