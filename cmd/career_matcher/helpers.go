package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-matcher/internal/config"
)

// resolveConfig merges the optional config file with environment variables
// and validates the result. With no --config flag, only the environment
// contributes.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readResumeText loads the resume text from a file path, or returns the
// inline text when no path is given.
func readResumeText(path, inline string) (string, error) {
	if path == "" {
		return inline, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return string(data), nil
}

// writeJSONOutput marshals v with indentation and writes it to outPath, or to
// stdout when outPath is empty.
func writeJSONOutput(outPath string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if outPath == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return err
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	return nil
}

// loadJSONFile unmarshals a JSON file into target.
func loadJSONFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse JSON file %s: %w", path, err)
	}
	return nil
}
