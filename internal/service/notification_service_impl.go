package service

import (
	"context"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

type notificationService struct {
	notifications repository.NotificationRepo
}

func NewNotificationService(notifications repository.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = domain.NewID(domain.PrefixNotification)
	}
	return s.notifications.Create(ctx, n)
}

func (s *notificationService) ListForRole(ctx context.Context, role domain.UserRole) ([]*domain.Notification, error) {
	all, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.Notification
	for _, n := range all {
		if n.VisibleTo(role) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, role domain.UserRole) (int, error) {
	visible, err := s.ListForRole(ctx, role)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range visible {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.notifications.MarkAllRead(ctx)
}
