package services

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/backend/storage"
)

func newNotificationsService() *NotificationsService {
	return NewNotificationsService(storage.NewMemoryBackend(), log.New(io.Discard, "", 0))
}

func TestNotificationsDefaultEmpty(t *testing.T) {
	ns := newNotificationsService()

	assert.Empty(t, ns.GetNotifications())
	assert.Empty(t, ns.GetMail())

	notifications, mail := ns.UnreadCounts()
	assert.Equal(t, 0, notifications)
	assert.Equal(t, 0, mail)
}

func TestPushNotificationNewestFirst(t *testing.T) {
	ns := newNotificationsService()

	assert.True(t, ns.PushNotification("Assignment due", "CS101 homework due tomorrow").Success)
	assert.True(t, ns.PushNotification("Grade posted", "Your Discrete Math grade is up").Success)

	notifications := ns.GetNotifications()
	assert.Len(t, notifications, 2)
	assert.Equal(t, "Grade posted", notifications[0].Title)
	assert.NotEmpty(t, notifications[0].ID)
	assert.NotEqual(t, notifications[0].ID, notifications[1].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	ns := newNotificationsService()

	assert.True(t, ns.PushNotification("One", "").Success)
	assert.True(t, ns.PushNotification("Two", "").Success)

	unread, _ := ns.UnreadCounts()
	assert.Equal(t, 2, unread)

	id := ns.GetNotifications()[0].ID
	assert.True(t, ns.MarkNotificationRead(id).Success)

	unread, _ = ns.UnreadCounts()
	assert.Equal(t, 1, unread)

	assert.False(t, ns.MarkNotificationRead("missing").Success)
}

func TestMailFlow(t *testing.T) {
	ns := newNotificationsService()

	assert.True(t, ns.PushMail("prof@school.edu", "Office hours", "Moved to Friday").Success)

	_, unreadMail := ns.UnreadCounts()
	assert.Equal(t, 1, unreadMail)

	mail := ns.GetMail()
	assert.Len(t, mail, 1)
	assert.True(t, ns.MarkMailRead(mail[0].ID).Success)

	_, unreadMail = ns.UnreadCounts()
	assert.Equal(t, 0, unreadMail)
}
