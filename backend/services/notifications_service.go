package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"portal/backend/models"
	"portal/backend/storage"
)

// NotificationsService обслуживает панель уведомлений и почты в тулбаре
type NotificationsService struct {
	Store  storage.Backend
	Logger *log.Logger
}

func NewNotificationsService(store storage.Backend, logger *log.Logger) *NotificationsService {
	return &NotificationsService{Store: store, Logger: logger}
}

// GetNotifications возвращает уведомления, новые в начале списка
func (ns *NotificationsService) GetNotifications() []models.Notification {
	var notifications []models.Notification
	if !readRecord(ns.Store, ns.Logger, storage.KeyNotifications, &notifications) {
		return []models.Notification{}
	}
	return notifications
}

// PushNotification добавляет непрочитанное уведомление в начало списка
func (ns *NotificationsService) PushNotification(title, body string) SaveResult {
	notifications := ns.GetNotifications()

	notification := models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	notifications = append([]models.Notification{notification}, notifications...)

	if err := writeRecord(ns.Store, storage.KeyNotifications, notifications); err != nil {
		return saveError(err, "notifications")
	}
	return saveOK("Notification added")
}

// MarkNotificationRead помечает уведомление прочитанным
func (ns *NotificationsService) MarkNotificationRead(id string) SaveResult {
	notifications := ns.GetNotifications()

	found := false
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			found = true
			break
		}
	}
	if !found {
		return saveFailed("Notification not found")
	}

	if err := writeRecord(ns.Store, storage.KeyNotifications, notifications); err != nil {
		return saveError(err, "notifications")
	}
	return saveOK("Notification marked as read")
}

// GetMail возвращает письма, новые в начале списка
func (ns *NotificationsService) GetMail() []models.MailMessage {
	var mail []models.MailMessage
	if !readRecord(ns.Store, ns.Logger, storage.KeyMailMessages, &mail) {
		return []models.MailMessage{}
	}
	return mail
}

// PushMail добавляет непрочитанное письмо в начало списка
func (ns *NotificationsService) PushMail(from, subject, preview string) SaveResult {
	mail := ns.GetMail()

	message := models.MailMessage{
		ID:        uuid.NewString(),
		From:      from,
		Subject:   subject,
		Preview:   preview,
		CreatedAt: time.Now(),
	}
	mail = append([]models.MailMessage{message}, mail...)

	if err := writeRecord(ns.Store, storage.KeyMailMessages, mail); err != nil {
		return saveError(err, "mail")
	}
	return saveOK("Mail added")
}

// MarkMailRead помечает письмо прочитанным
func (ns *NotificationsService) MarkMailRead(id string) SaveResult {
	mail := ns.GetMail()

	found := false
	for i := range mail {
		if mail[i].ID == id {
			mail[i].Read = true
			found = true
			break
		}
	}
	if !found {
		return saveFailed("Mail not found")
	}

	if err := writeRecord(ns.Store, storage.KeyMailMessages, mail); err != nil {
		return saveError(err, "mail")
	}
	return saveOK("Mail marked as read")
}

// UnreadCounts возвращает количество непрочитанных уведомлений и писем
// для бейджей тулбара
func (ns *NotificationsService) UnreadCounts() (int, int) {
	unreadNotifications := 0
	for _, notification := range ns.GetNotifications() {
		if !notification.Read {
			unreadNotifications++
		}
	}

	unreadMail := 0
	for _, message := range ns.GetMail() {
		if !message.Read {
			unreadMail++
		}
	}

	return unreadNotifications, unreadMail
}
