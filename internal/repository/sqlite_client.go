package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// SQLiteClientRepo implements ClientRepo against the in-memory store.
type SQLiteClientRepo struct {
	db *sql.DB
}

func NewSQLiteClientRepo(db *sql.DB) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: db}
}

const clientColumns = `id, name, contact_name, email, phone, address, project_count`

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.ContactName, c.Email, c.Phone, c.Address, c.ProjectCount)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	c, err := scanClient(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return c, err
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows.Scan)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = ?, contact_name = ?, email = ?, phone = ?, address = ?, project_count = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name, c.ContactName, c.Email, c.Phone, c.Address, c.ProjectCount, c.ID)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	// Deleting a missing id is a no-op; dependent projects are NOT removed.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

func scanClient(scan func(dest ...any) error) (*domain.Client, error) {
	var c domain.Client
	err := scan(&c.ID, &c.Name, &c.ContactName, &c.Email, &c.Phone, &c.Address, &c.ProjectCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	return &c, nil
}
