package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// SQLiteNotificationRepo implements NotificationRepo against the in-memory store.
type SQLiteNotificationRepo struct {
	db *sql.DB
}

func NewSQLiteNotificationRepo(db *sql.DB) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: db}
}

const notificationColumns = `id, type, title, message, date, read, target_role, link_to`

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (` + notificationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, string(n.Type), n.Title, n.Message, n.Date.Format(domain.DateLayout),
		boolToInt(n.Read), string(n.TargetRole), n.LinkTo)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) List(ctx context.Context) ([]*domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows.Scan)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

func (r *SQLiteNotificationRepo) MarkRead(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) MarkAllRead(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = 1`); err != nil {
		return fmt.Errorf("marking all notifications read: %w", err)
	}
	return nil
}

func scanNotification(scan func(dest ...any) error) (*domain.Notification, error) {
	var (
		n                 domain.Notification
		ntype, role, date string
		read              int
	)
	err := scan(&n.ID, &ntype, &n.Title, &n.Message, &date, &read, &role, &n.LinkTo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning notification: %w", err)
	}

	n.Type = domain.NotificationType(ntype)
	n.TargetRole = domain.UserRole(role)
	n.Read = intToBool(read)
	if n.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	return &n, nil
}
