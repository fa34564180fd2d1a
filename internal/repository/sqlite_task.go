package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo. Alerts and progress updates live in
// child tables and are loaded with every task read; per-task volumes are
// tiny (a handful of rows).
type SQLiteTaskRepo struct {
	db *sql.DB
}

func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, title, project_id, project_name, assigned_to, assigned_to_name,
	priority, status, due_date, description, hours_logged, avance`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.ProjectID, t.ProjectName, t.AssignedTo, t.AssignedToName,
		string(t.Priority), string(t.Status), t.DueDate.Format(domain.DateLayout),
		t.Description, t.HoursLogged, t.Avance)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	if err := r.replaceAlerts(ctx, r.db, t.ID, t.Alerts); err != nil {
		return err
	}
	for _, u := range t.ProgressUpdates {
		if err := r.insertUpdate(ctx, r.db, t.ID, u); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY rowid`)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY rowid`, projectID)
}

func (r *SQLiteTaskRepo) ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE assigned_to = ? ORDER BY rowid`, userID)
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	for _, t := range tasks {
		if err := r.loadChildren(ctx, t); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, project_id = ?, project_name = ?, assigned_to = ?,
		assigned_to_name = ?, priority = ?, status = ?, due_date = ?, description = ?,
		hours_logged = ?, avance = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title, t.ProjectID, t.ProjectName, t.AssignedTo, t.AssignedToName,
		string(t.Priority), string(t.Status), t.DueDate.Format(domain.DateLayout),
		t.Description, t.HoursLogged, t.Avance, t.ID)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return r.replaceAlerts(ctx, r.db, t.ID, t.Alerts)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	// Child alerts and updates go with the task (ON DELETE CASCADE);
	// time entries referencing the task are left alone.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// AddUpdate performs the dual write: append to the history table and
// overwrite the scalar avance. Both happen in one transaction so the detail
// screen never observes one without the other.
func (r *SQLiteTaskRepo) AddUpdate(ctx context.Context, taskID string, u domain.ProgressUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning progress update transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `UPDATE tasks SET avance = ? WHERE id = ?`, u.Content, taskID)
	if err != nil {
		return fmt.Errorf("updating task avance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task existence: %w", err)
	}
	if affected == 0 {
		// Unknown task: mutation is dropped silently.
		return nil
	}

	if err := r.insertUpdate(ctx, tx, taskID, u); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing progress update: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *SQLiteTaskRepo) replaceAlerts(ctx context.Context, ex execer, taskID string, alerts []domain.TaskAlert) error {
	if _, err := ex.ExecContext(ctx, `DELETE FROM task_alerts WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("clearing task alerts: %w", err)
	}
	for _, a := range alerts {
		_, err := ex.ExecContext(ctx,
			`INSERT INTO task_alerts (task_id, alert_date, alert_time) VALUES (?, ?, ?)`,
			taskID, a.Date, a.Time)
		if err != nil {
			return fmt.Errorf("inserting task alert: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) insertUpdate(ctx context.Context, ex execer, taskID string, u domain.ProgressUpdate) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO task_updates (id, task_id, date, content, author) VALUES (?, ?, ?, ?, ?)`,
		u.ID, taskID, u.Date.Format(domain.DateLayout), u.Content, u.Author)
	if err != nil {
		return fmt.Errorf("inserting progress update: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) loadChildren(ctx context.Context, t *domain.Task) error {
	alertRows, err := r.db.QueryContext(ctx,
		`SELECT alert_date, alert_time FROM task_alerts WHERE task_id = ? ORDER BY rowid`, t.ID)
	if err != nil {
		return fmt.Errorf("loading task alerts: %w", err)
	}
	defer alertRows.Close()
	for alertRows.Next() {
		var a domain.TaskAlert
		if err := alertRows.Scan(&a.Date, &a.Time); err != nil {
			return fmt.Errorf("scanning task alert: %w", err)
		}
		t.Alerts = append(t.Alerts, a)
	}
	if err := alertRows.Err(); err != nil {
		return fmt.Errorf("iterating task alerts: %w", err)
	}

	updateRows, err := r.db.QueryContext(ctx,
		`SELECT id, date, content, author FROM task_updates WHERE task_id = ? ORDER BY rowid`, t.ID)
	if err != nil {
		return fmt.Errorf("loading progress updates: %w", err)
	}
	defer updateRows.Close()
	for updateRows.Next() {
		var (
			u    domain.ProgressUpdate
			date string
		)
		if err := updateRows.Scan(&u.ID, &date, &u.Content, &u.Author); err != nil {
			return fmt.Errorf("scanning progress update: %w", err)
		}
		if u.Date, err = parseDate(date); err != nil {
			return err
		}
		t.ProgressUpdates = append(t.ProgressUpdates, u)
	}
	if err := updateRows.Err(); err != nil {
		return fmt.Errorf("iterating progress updates: %w", err)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var (
		t                domain.Task
		priority, status string
		dueDate          string
	)
	err := scan(&t.ID, &t.Title, &t.ProjectID, &t.ProjectName, &t.AssignedTo, &t.AssignedToName,
		&priority, &status, &dueDate, &t.Description, &t.HoursLogged, &t.Avance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	var parsed time.Time
	if parsed, err = parseDate(dueDate); err != nil {
		return nil, err
	}
	t.DueDate = parsed
	return &t, nil
}
