package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// SQLiteTimeEntryRepo implements TimeEntryRepo against the in-memory store.
type SQLiteTimeEntryRepo struct {
	db *sql.DB
}

func NewSQLiteTimeEntryRepo(db *sql.DB) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: db}
}

const timeEntryColumns = `id, task_id, task_title, project_name, user_id, user_name, date, hours, billable, description`

func (r *SQLiteTimeEntryRepo) Create(ctx context.Context, te *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (` + timeEntryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		te.ID, te.TaskID, te.TaskTitle, te.ProjectName, te.UserID, te.UserName,
		te.Date.Format(domain.DateLayout), te.Hours, boolToInt(te.Billable), te.Description)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = ?`, id)
	te, err := scanTimeEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("time entry %s: %w", id, domain.ErrNotFound)
	}
	return te, err
}

func (r *SQLiteTimeEntryRepo) List(ctx context.Context) ([]*domain.TimeEntry, error) {
	return r.queryEntries(ctx, `SELECT `+timeEntryColumns+` FROM time_entries ORDER BY rowid`)
}

func (r *SQLiteTimeEntryRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.TimeEntry, error) {
	return r.queryEntries(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE task_id = ? ORDER BY rowid`, taskID)
}

func (r *SQLiteTimeEntryRepo) ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	return r.queryEntries(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE user_id = ? ORDER BY rowid`, userID)
}

func (r *SQLiteTimeEntryRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		te, err := scanTimeEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, te)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteTimeEntryRepo) Update(ctx context.Context, te *domain.TimeEntry) error {
	query := `UPDATE time_entries SET task_id = ?, task_title = ?, project_name = ?, user_id = ?,
		user_name = ?, date = ?, hours = ?, billable = ?, description = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		te.TaskID, te.TaskTitle, te.ProjectName, te.UserID, te.UserName,
		te.Date.Format(domain.DateLayout), te.Hours, boolToInt(te.Billable), te.Description, te.ID)
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	return nil
}

func scanTimeEntry(scan func(dest ...any) error) (*domain.TimeEntry, error) {
	var (
		te       domain.TimeEntry
		date     string
		billable int
	)
	err := scan(&te.ID, &te.TaskID, &te.TaskTitle, &te.ProjectName, &te.UserID, &te.UserName,
		&date, &te.Hours, &billable, &te.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}

	te.Billable = intToBool(billable)
	if te.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	return &te, nil
}
