package project

import (
	"database/sql"
	"fmt"
	"math"
	"portfolio/pkg/constants"
	"portfolio/pkg/db"
	"portfolio/pkg/models"
	"portfolio/pkg/utils"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
)

// ProjectRepo owns every read and write of the projects table.
// Each call runs exactly one statement on its own connection.
type ProjectRepo interface {
	InitializeSchema() *utils.GenericError
	CreateOne(title, description, imageFileName string) (uint64, *utils.GenericError)
	List() ([]models.Project, *utils.GenericError)
	// GetOneByID returns nil and no error when no project has the id.
	GetOneByID(id uint64) (*models.Project, *utils.GenericError)
	// UpdateOneByID reports false when no project has the id.
	UpdateOneByID(id uint64, title, description, imageFileName string) (bool, *utils.GenericError)
	// DeleteOneByID reports false when no project has the id.
	DeleteOneByID(id uint64) (bool, *utils.GenericError)
	Count() (uint64, *utils.GenericError)
}

type projectRepo struct {
	dataStore db.DataStore
	logger    hclog.Logger
}

func NewProjectRepo(logger hclog.Logger, dataStore db.DataStore) ProjectRepo {
	return &projectRepo{
		dataStore: dataStore,
		logger:    logger.Named("project-repo"),
	}
}

// InitializeSchema ensures the projects table exists
func (projectRepo *projectRepo) InitializeSchema() *utils.GenericError {
	if err := projectRepo.dataStore.RunMigration(); err != nil {
		return utils.StorageError("initialize schema", err)
	}
	return nil
}

// CreateOne inserts a single project and returns its id
func (projectRepo *projectRepo) CreateOne(title, description, imageFileName string) (uint64, *utils.GenericError) {
	query, params, err := sq.Insert(constants.ProjectsTableName).
		Columns(
			constants.ProjectsTitleColumn,
			constants.ProjectsDescriptionColumn,
			constants.ProjectsImageFileNameColumn,
		).
		Values(
			title,
			description,
			imageFileName,
		).ToSql()
	if err != nil {
		return 0, utils.StorageError("create project", err)
	}

	var insertedID int64
	err = projectRepo.dataStore.WithTransaction(func(tx *sql.Tx) error {
		res, execErr := tx.Exec(query, params...)
		if execErr != nil {
			return execErr
		}
		insertedID, execErr = res.LastInsertId()
		return execErr
	})
	if err != nil {
		projectRepo.logger.Error("failed to create project", "error", err)
		return 0, utils.StorageError("create project", err)
	}

	projectRepo.logger.Debug("created project", "id", insertedID)
	return uint64(insertedID), nil
}

// List returns every project in insertion order
func (projectRepo *projectRepo) List() ([]models.Project, *utils.GenericError) {
	projects := []models.Project{}

	err := projectRepo.dataStore.WithConnection(func(conn *sql.DB) error {
		rows, err := projectRepo.selectBuilder().
			OrderBy(fmt.Sprintf("%s ASC", constants.ProjectsIdColumn)).
			RunWith(conn).
			Query()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			project, scanErr := scanProject(rows)
			if scanErr != nil {
				return scanErr
			}
			projects = append(projects, project)
		}
		return rows.Err()
	})
	if err != nil {
		projectRepo.logger.Error("failed to list projects", "error", err)
		return nil, utils.StorageError("list projects", err)
	}

	return projects, nil
}

// GetOneByID returns the project that matches the id
func (projectRepo *projectRepo) GetOneByID(id uint64) (*models.Project, *utils.GenericError) {
	if !storableID(id) {
		return nil, nil
	}

	var project *models.Project

	err := projectRepo.dataStore.WithConnection(func(conn *sql.DB) error {
		rows, err := projectRepo.selectBuilder().
			Where(sq.Eq{constants.ProjectsIdColumn: int64(id)}).
			RunWith(conn).
			Query()
		if err != nil {
			return err
		}
		defer rows.Close()

		if rows.Next() {
			found, scanErr := scanProject(rows)
			if scanErr != nil {
				return scanErr
			}
			project = &found
		}
		return rows.Err()
	})
	if err != nil {
		projectRepo.logger.Error("failed to get project", "id", id, "error", err)
		return nil, utils.StorageError("get project", err)
	}

	return project, nil
}

// UpdateOneByID overwrites title, description and image of a single project
func (projectRepo *projectRepo) UpdateOneByID(id uint64, title, description, imageFileName string) (bool, *utils.GenericError) {
	if !storableID(id) {
		return false, nil
	}

	query, params, err := sq.Update(constants.ProjectsTableName).
		Set(constants.ProjectsTitleColumn, title).
		Set(constants.ProjectsDescriptionColumn, description).
		Set(constants.ProjectsImageFileNameColumn, imageFileName).
		Where(sq.Eq{constants.ProjectsIdColumn: int64(id)}).
		ToSql()
	if err != nil {
		return false, utils.StorageError("update project", err)
	}

	count, err := projectRepo.execAffectingRows(query, params)
	if err != nil {
		projectRepo.logger.Error("failed to update project", "id", id, "error", err)
		return false, utils.StorageError("update project", err)
	}

	return count > 0, nil
}

// DeleteOneByID deletes a single project
func (projectRepo *projectRepo) DeleteOneByID(id uint64) (bool, *utils.GenericError) {
	if !storableID(id) {
		return false, nil
	}

	query, params, err := sq.Delete(constants.ProjectsTableName).
		Where(sq.Eq{constants.ProjectsIdColumn: int64(id)}).
		ToSql()
	if err != nil {
		return false, utils.StorageError("delete project", err)
	}

	count, err := projectRepo.execAffectingRows(query, params)
	if err != nil {
		projectRepo.logger.Error("failed to delete project", "id", id, "error", err)
		return false, utils.StorageError("delete project", err)
	}

	return count > 0, nil
}

// Count return the number of projects
func (projectRepo *projectRepo) Count() (uint64, *utils.GenericError) {
	var count uint64

	err := projectRepo.dataStore.WithConnection(func(conn *sql.DB) error {
		return sq.Select("count(*)").
			From(constants.ProjectsTableName).
			RunWith(conn).
			QueryRow().
			Scan(&count)
	})
	if err != nil {
		return 0, utils.StorageError("count projects", err)
	}

	return count, nil
}

// sqlite rowids are signed 64 bit, so larger ids can never match a row
func storableID(id uint64) bool {
	return id <= math.MaxInt64
}

func (projectRepo *projectRepo) execAffectingRows(query string, params []interface{}) (int64, error) {
	var count int64
	err := projectRepo.dataStore.WithTransaction(func(tx *sql.Tx) error {
		res, err := tx.Exec(query, params...)
		if err != nil {
			return err
		}
		count, err = res.RowsAffected()
		return err
	})
	return count, err
}

func (projectRepo *projectRepo) selectBuilder() sq.SelectBuilder {
	return sq.Select(
		constants.ProjectsIdColumn,
		constants.ProjectsTitleColumn,
		constants.ProjectsDescriptionColumn,
		constants.ProjectsImageFileNameColumn,
		fmt.Sprintf("cast(\"%s\" as text)", constants.ProjectsCreatedDateColumn),
	).From(constants.ProjectsTableName)
}

func scanProject(rows *sql.Rows) (models.Project, error) {
	project := models.Project{}
	var imageFileName sql.NullString
	var dateString sql.NullString

	err := rows.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&imageFileName,
		&dateString,
	)
	if err != nil {
		return project, err
	}

	project.ImageFileName = imageFileName.String
	project.Image = models.DisplayImage(project.ImageFileName)

	if dateString.Valid && dateString.String != "" {
		t, parseErr := dateparse.ParseIn(dateString.String, time.UTC)
		if parseErr != nil {
			return project, fmt.Errorf("%s dateString: %s", parseErr.Error(), dateString.String)
		}
		project.DateCreated = t
	}

	return project, nil
}
