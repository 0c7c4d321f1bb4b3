package migrations

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first statement goose issues fails

	err = Migrate(context.Background(), db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errNilDB)
}

func TestEmbeddedMigrations_HaveGooseSections(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestEmbeddedMigrations_DeclareUniqueness(t *testing.T) {
	var all strings.Builder
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		all.Write(body)
	}

	schema := all.String()
	for _, constraint := range []string{
		"uq_cases_reference_number",
		"uq_land_reference_number",
		"uq_land_current_owner",
		"uq_inquiry_chairperson",
		"uq_inquiry_finding_number",
		"uq_other_case_attribute_name",
		"uq_agreement_version",
	} {
		assert.Contains(t, schema, constraint)
	}
}
