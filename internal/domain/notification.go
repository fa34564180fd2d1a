package domain

import (
	"sort"
	"time"
)

type Notification struct {
	ID      string
	Type    NotificationType
	Title   string
	Message string
	Date    time.Time
	Read    bool
	// TargetRole restricts visibility to one role; empty means everyone.
	TargetRole UserRole
	// LinkTo names the root view a click should jump to; empty means inert.
	LinkTo string
}

// VisibleTo reports whether the notification should be shown to a user
// with the given role.
func (n *Notification) VisibleTo(role UserRole) bool {
	return n.TargetRole == "" || n.TargetRole == role
}

// SortNotificationsNewestFirst orders notifications by date, newest first.
// Same-day entries keep their insertion order.
func SortNotificationsNewestFirst(notifications []*Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Date.After(notifications[j].Date)
	})
}
