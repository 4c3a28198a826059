// Package catalog loads the static read-only reference data the matchers rank
// against. Catalogs are constructed explicitly and passed into the scorers;
// nothing in this package mutates them after load.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-matcher/internal/types"
)

// Catalog file names expected inside a catalog directory. A missing file is
// an empty catalog, not an error — small deployments ship partial data.
const (
	occupationsFile = "occupations.json"
	jobsFile        = "jobs.json"
	programsFile    = "programs.json"
	companiesFile   = "companies.json"
)

// Catalogs bundles all reference data sets.
type Catalogs struct {
	Occupations []types.Occupation
	Jobs        []types.JobPosting
	Programs    []types.EducationProgram
	Companies   []types.Company
}

var validate = validator.New()

// LoadFromDir reads every catalog file from dir. Each file is validated
// against its JSON schema (when schemaDir is non-empty) and each record's
// struct tags before being accepted.
func LoadFromDir(dir, schemaDir string) (*Catalogs, error) {
	catalogs := &Catalogs{}

	if err := loadFile(dir, schemaDir, occupationsFile, "occupations.schema.json", &catalogs.Occupations); err != nil {
		return nil, err
	}
	if err := loadFile(dir, schemaDir, jobsFile, "jobs.schema.json", &catalogs.Jobs); err != nil {
		return nil, err
	}
	if err := loadFile(dir, schemaDir, programsFile, "programs.schema.json", &catalogs.Programs); err != nil {
		return nil, err
	}
	if err := loadFile(dir, schemaDir, companiesFile, "companies.schema.json", &catalogs.Companies); err != nil {
		return nil, err
	}

	if err := catalogs.validateRecords(); err != nil {
		return nil, err
	}
	return catalogs, nil
}

// loadFile reads and unmarshals one catalog file into target, checking the
// JSON schema first when one is available.
func loadFile(dir, schemaDir, fileName, schemaName string, target any) error {
	path := filepath.Join(dir, fileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if schemaDir != "" {
		if err := validateAgainstSchema(filepath.Join(schemaDir, schemaName), data); err != nil {
			return fmt.Errorf("catalog file %s: %w", path, err)
		}
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return nil
}

// validateAgainstSchema checks raw catalog JSON against a schema file.
// A missing schema file skips the check rather than failing the load.
func validateAgainstSchema(schemaPath string, data []byte) error {
	if _, err := os.Stat(schemaPath); err != nil {
		return nil
	}

	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + absPath)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return fmt.Errorf("schema validation failed: %v", messages)
	}
	return nil
}

// validateRecords runs struct-tag validation over every loaded record.
func (c *Catalogs) validateRecords() error {
	for i := range c.Occupations {
		if err := validate.Struct(&c.Occupations[i]); err != nil {
			return fmt.Errorf("invalid occupation record %d: %w", i, err)
		}
	}
	for i := range c.Jobs {
		if err := validate.Struct(&c.Jobs[i]); err != nil {
			return fmt.Errorf("invalid job record %d: %w", i, err)
		}
	}
	for i := range c.Programs {
		if err := validate.Struct(&c.Programs[i]); err != nil {
			return fmt.Errorf("invalid program record %d: %w", i, err)
		}
	}
	for i := range c.Companies {
		if err := validate.Struct(&c.Companies[i]); err != nil {
			return fmt.Errorf("invalid company record %d: %w", i, err)
		}
	}
	return nil
}
