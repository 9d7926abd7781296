package test_helpers

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"portfolio/pkg/constants"
	"portfolio/pkg/db"
	"portfolio/pkg/models"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/hashicorp/go-hclog"
)

// NewTestLogger returns a debug logger named after the package under test.
func NewTestLogger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString("DEBUG"),
	})
}

// NewTestDataStore creates a migrated sqlite file that lives as long as the test.
func NewTestDataStore(t *testing.T, logger hclog.Logger) db.DataStore {
	t.Helper()

	sqliteDb := db.NewSqliteDbConnection(logger, filepath.Join(t.TempDir(), "projects.db"))
	if err := sqliteDb.RunMigration(); err != nil {
		t.Fatalf("Failed to run migration: %v", err)
	}
	return sqliteDb
}

// FakeProjects returns n projects with random titles and descriptions.
func FakeProjects(n int, t *testing.T) []models.Project {
	t.Helper()

	projects := make([]models.Project, 0, n)
	for i := 0; i < n; i++ {
		var p models.Project
		if err := faker.FakeData(&p); err != nil {
			t.Fatalf("Failed to fake project: %v", err)
		}
		p.ID = 0
		projects = append(projects, p)
	}
	return projects
}

// InsertFakeProjects writes n fake projects straight to the table and returns their ids.
func InsertFakeProjects(n int, store db.DataStore, t *testing.T) []uint64 {
	t.Helper()

	var ids []uint64
	for _, p := range FakeProjects(n, t) {
		err := store.WithTransaction(func(tx *sql.Tx) error {
			rs, err := tx.Exec(fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)",
				constants.ProjectsTableName,
				constants.ProjectsTitleColumn,
				constants.ProjectsDescriptionColumn,
				constants.ProjectsImageFileNameColumn,
			), p.Title, p.Description, p.ImageFileName)
			if err != nil {
				return err
			}
			projectId, err := rs.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, uint64(projectId))
			return nil
		})
		if err != nil {
			t.Fatalf("Failed to insert fake project: %v", err)
		}
	}
	return ids
}
