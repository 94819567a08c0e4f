package usecase

import (
	"strings"

	"hod-management-backend/internal/model"
	"hod-management-backend/internal/repository"

	"github.com/pkg/errors"
)

const (
	RecipientsAll  = "all"
	RecipientsRole = "role"
	RecipientsUser = "user"
)

// Audience selects who receives a notification or message.
type Audience struct {
	Type   string
	Role   string
	UserID *uint
}

type NotificationInput struct {
	Type    string
	Title   string
	Message string
	Audience
}

type MessageInput struct {
	Subject string
	Message string
	Audience
}

type NotificationUsecase struct {
	users repository.UserRepository
	repo  repository.NotificationRepository
}

func NewNotificationUsecase(users repository.UserRepository, repo repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{users: users, repo: repo}
}

func (u *NotificationUsecase) recipients(a Audience) ([]uint, error) {
	var ids []uint
	var err error

	switch a.Type {
	case RecipientsAll:
		ids, err = u.users.ActiveIDs("")
	case RecipientsRole:
		if a.Role == "" {
			return nil, ErrRoleRequired
		}
		ids, err = u.users.ActiveIDs(a.Role)
	case RecipientsUser:
		if a.UserID == nil || *a.UserID == 0 {
			return nil, ErrUserIDRequired
		}
		ids = []uint{*a.UserID}
	}
	if err != nil {
		return nil, errors.Wrap(err, "resolve recipients")
	}
	if len(ids) == 0 {
		return nil, ErrNoRecipients
	}
	return ids, nil
}

// SendNotification stores one notification per recipient and returns how many
// were stored. Delivery stops at the first failed insert; earlier rows stay.
func (u *NotificationUsecase) SendNotification(in NotificationInput) (int, error) {
	if blank(in.Type, in.Title, in.Message, in.Audience.Type) {
		return 0, ErrMissingFields
	}
	ids, err := u.recipients(in.Audience)
	if err != nil {
		return 0, err
	}

	for i, id := range ids {
		id := id
		n := &model.Notification{UserID: &id, Type: in.Type, Title: in.Title, Message: in.Message}
		if err := u.repo.CreateNotification(n); err != nil {
			return i, errors.Wrapf(err, "notify user %d", id)
		}
	}
	return len(ids), nil
}

// SendMessage stores one message per recipient. The sender is the given user,
// or the first admin account when there is none.
func (u *NotificationUsecase) SendMessage(in MessageInput, from *uint) (int, error) {
	if blank(in.Subject, in.Message, in.Audience.Type) {
		return 0, ErrMissingFields
	}
	ids, err := u.recipients(in.Audience)
	if err != nil {
		return 0, err
	}

	if from == nil {
		if from, err = u.users.FirstAdminID(); err != nil {
			return 0, errors.Wrap(err, "find sender")
		}
	}

	for i, id := range ids {
		id := id
		m := &model.Message{UserID: &id, FromUserID: from, Subject: in.Subject, Message: in.Message}
		if err := u.repo.CreateMessage(m); err != nil {
			return i, errors.Wrapf(err, "message user %d", id)
		}
	}
	return len(ids), nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
