package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadFromDir_AllFiles(t *testing.T) {
	dir := t.TempDir()

	writeCatalogFile(t, dir, "occupations.json", `[
		{"title": "백엔드 개발자", "sector": "정보통신", "required_years": 2,
		 "required_skills": ["Node", "DB", "API", "클라우드"]}
	]`)
	writeCatalogFile(t, dir, "jobs.json", `[
		{"title": "서버 개발자 채용", "sector": "정보통신", "company_name": "테크회사"}
	]`)
	writeCatalogFile(t, dir, "programs.json", `[
		{"title": "클라우드 입문", "skills": ["클라우드", "서버"]}
	]`)
	writeCatalogFile(t, dir, "companies.json", `[
		{"name": "좋은회사", "category": "정보통신", "employment_type": "정규직"}
	]`)

	catalogs, err := LoadFromDir(dir, "")

	require.NoError(t, err)
	require.Len(t, catalogs.Occupations, 1)
	assert.Equal(t, "백엔드 개발자", catalogs.Occupations[0].Title)
	assert.Equal(t, 2, catalogs.Occupations[0].RequiredYears)
	require.Len(t, catalogs.Jobs, 1)
	require.Len(t, catalogs.Programs, 1)
	require.Len(t, catalogs.Companies, 1)
}

func TestLoadFromDir_MissingFilesAreEmptyCatalogs(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "jobs.json", `[{"title": "공고", "sector": "건설"}]`)

	catalogs, err := LoadFromDir(dir, "")

	require.NoError(t, err)
	assert.Empty(t, catalogs.Occupations)
	assert.Len(t, catalogs.Jobs, 1)
	assert.Empty(t, catalogs.Programs)
	assert.Empty(t, catalogs.Companies)
}

func TestLoadFromDir_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "occupations.json", `{not json`)

	_, err := LoadFromDir(dir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "occupations.json")
}

func TestLoadFromDir_StructValidation(t *testing.T) {
	dir := t.TempDir()
	// Missing required title.
	writeCatalogFile(t, dir, "occupations.json", `[{"sector": "정보통신"}]`)

	_, err := LoadFromDir(dir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid occupation record")
}

func TestLoadFromDir_SchemaValidation(t *testing.T) {
	dir := t.TempDir()
	schemaDir := t.TempDir()

	writeCatalogFile(t, schemaDir, "occupations.schema.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "sector"],
			"properties": {
				"title": {"type": "string"},
				"sector": {"type": "string"}
			}
		}
	}`)
	writeCatalogFile(t, dir, "occupations.json", `[{"title": "직업"}]`)

	_, err := LoadFromDir(dir, schemaDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadFromDir_MissingSchemaSkipsCheck(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "occupations.json", `[{"title": "직업", "sector": "건설"}]`)

	catalogs, err := LoadFromDir(dir, t.TempDir())

	require.NoError(t, err)
	assert.Len(t, catalogs.Occupations, 1)
}
