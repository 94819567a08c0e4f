package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

const inboxLimit = 10

type NotificationRepository interface {
	GetNotifications(userID *uint) ([]model.Notification, error)
	CreateNotification(n *model.Notification) error
	MarkNotificationRead(id uint) error

	GetMessages(userID *uint) ([]model.MessageListItem, error)
	CreateMessage(m *model.Message) error
	MarkMessageRead(id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

// GetNotifications returns the latest notifications for a user, or the
// broadcast ones (no user) when userID is nil.
func (r *notificationRepository) GetNotifications(userID *uint) ([]model.Notification, error) {
	rows := []model.Notification{}
	query := r.db.Model(&model.Notification{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else {
		query = query.Where("user_id IS NULL")
	}
	err := query.Order("created_at DESC").Order("id DESC").Limit(inboxLimit).Find(&rows).Error
	return rows, err
}

func (r *notificationRepository) CreateNotification(n *model.Notification) error {
	return r.db.Create(n).Error
}

func (r *notificationRepository) MarkNotificationRead(id uint) error {
	return r.db.Model(&model.Notification{}).Where("id = ?", id).Update("read", true).Error
}

func (r *notificationRepository) GetMessages(userID *uint) ([]model.MessageListItem, error) {
	rows := []model.MessageListItem{}
	query := r.db.Table("messages m").
		Select("m.*, u.name AS from_name").
		Joins("LEFT JOIN users u ON m.from_user_id = u.id")
	if userID != nil {
		query = query.Where("m.user_id = ?", *userID)
	} else {
		query = query.Where("m.user_id IS NULL")
	}
	err := query.Order("m.created_at DESC").Order("m.id DESC").Limit(inboxLimit).Scan(&rows).Error
	return rows, err
}

func (r *notificationRepository) CreateMessage(m *model.Message) error {
	return r.db.Create(m).Error
}

func (r *notificationRepository) MarkMessageRead(id uint) error {
	return r.db.Model(&model.Message{}).Where("id = ?", id).Update("read", true).Error
}
