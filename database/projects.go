package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"vitrine/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	columnTitle    = "title"
	columnImageURL = "image_url"
	columnImageKey = "image_key"
	columnDate     = "date"
	columnLink     = "link"
	columnCategory = "category"
)

const projectColumns = "id, title, image_url, image_key, date, link, category, created_at, updated_at"

func (db *DB) CreateProject(ctx context.Context, p models.NewProject) (*models.Project, error) {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}

	query := `
		INSERT INTO projects (title, image_url, image_key, date, link, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + projectColumns

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		p.Title, p.ImageURL, p.ImageKey, p.Date, p.Link, p.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Created project: %s (ID: %s)", project.Title, project.ID)
	return project, nil
}

func (db *DB) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1
	`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// ListProjects returns all projects newest first: descending date,
// ties broken by most recently updated.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY date DESC, updated_at DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// UpdateProject applies a partial update and returns the new row.
// updated_at is always advanced.
func (db *DB) UpdateProject(ctx context.Context, id uuid.UUID, u models.ProjectUpdate) (*models.Project, error) {
	ub := newUpdateBuilder()

	if u.Title != nil {
		ub.Set(columnTitle, *u.Title)
	}
	if u.ImageURL != nil {
		ub.Set(columnImageURL, *u.ImageURL)
	}
	if u.ImageKey != nil {
		ub.Set(columnImageKey, *u.ImageKey)
	}
	if u.Date != nil {
		ub.Set(columnDate, *u.Date)
	}
	if u.UnsetLink {
		ub.SetNull(columnLink)
	} else if u.Link != nil {
		ub.Set(columnLink, *u.Link)
	}
	if u.Category != nil {
		ub.Set(columnCategory, *u.Category)
	}
	ub.SetRaw("updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE projects
		%s
		WHERE id = $%d
		RETURNING %s
	`, ub.SetClause(), ub.NextArgNum(), projectColumns)

	args := append(ub.Args(), id)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

func (db *DB) DeleteProject(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	log.Printf("Deleted project: %s", id)
	return nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.ImageURL,
		&project.ImageKey,
		&project.Date,
		&project.Link,
		&project.Category,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
