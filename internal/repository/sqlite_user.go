package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// SQLiteUserRepo implements UserRepo. The directory is seeded once and
// never mutated, so there is no Update or Delete.
type SQLiteUserRepo struct {
	db *sql.DB
}

func NewSQLiteUserRepo(db *sql.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

const userColumns = `id, name, email, role, avatar`

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, string(u.Role), u.Avatar)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return u, err
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY rowid`)
}

func (r *SQLiteUserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY rowid`, string(role))
}

func (r *SQLiteUserRepo) queryUsers(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func scanUser(scan func(dest ...any) error) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := scan(&u.ID, &u.Name, &u.Email, &role, &u.Avatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
