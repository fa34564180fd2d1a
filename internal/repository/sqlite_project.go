package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo against the in-memory store.
type SQLiteProjectRepo struct {
	db *sql.DB
}

func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const projectColumns = `id, name, client_id, client_name, category, status, priority, assigned_to,
	due_date, start_date, juzgado, expediente, description, avance, progress, budget, team`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.ClientID, p.ClientName, string(p.Category), string(p.Status), string(p.Priority),
		joinIDs(p.AssignedTo), p.DueDate.Format(domain.DateLayout), p.StartDate.Format(domain.DateLayout),
		p.Juzgado, p.Expediente, p.Description, p.Avance, p.Progress, p.Budget, joinIDs(p.Team))
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return p, err
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY rowid`)
}

func (r *SQLiteProjectRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE client_id = ? ORDER BY rowid`, clientID)
}

func (r *SQLiteProjectRepo) queryProjects(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, client_id = ?, client_name = ?, category = ?, status = ?,
		priority = ?, assigned_to = ?, due_date = ?, start_date = ?, juzgado = ?, expediente = ?,
		description = ?, avance = ?, progress = ?, budget = ?, team = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.ClientID, p.ClientName, string(p.Category), string(p.Status), string(p.Priority),
		joinIDs(p.AssignedTo), p.DueDate.Format(domain.DateLayout), p.StartDate.Format(domain.DateLayout),
		p.Juzgado, p.Expediente, p.Description, p.Avance, p.Progress, p.Budget, joinIDs(p.Team),
		p.ID)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	// No cascade: the project's tasks survive with a dangling project_id.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var (
		p                  domain.Project
		category, status   string
		priority           string
		assignedTo, team   string
		dueDate, startDate string
	)
	err := scan(&p.ID, &p.Name, &p.ClientID, &p.ClientName, &category, &status, &priority, &assignedTo,
		&dueDate, &startDate, &p.Juzgado, &p.Expediente, &p.Description, &p.Avance, &p.Progress, &p.Budget, &team)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Category = domain.Category(category)
	p.Status = domain.ProjectStatus(status)
	p.Priority = domain.Priority(priority)
	p.AssignedTo = splitIDs(assignedTo)
	p.Team = splitIDs(team)
	if p.DueDate, err = parseDate(dueDate); err != nil {
		return nil, err
	}
	if p.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	return &p, nil
}
