package entity

import "time"

// NotificationEvent names an event understood by the notifications service.
type NotificationEvent string

const (
	NotificationEventLikeAdded NotificationEvent = "LIKE_ADDED"
)

// NotificationTypeLikes is the notification type shown to the recipient.
const NotificationTypeLikes = "Likes"

// Notification is the webhook envelope sent to the notifications service.
type Notification struct {
	Event NotificationEvent `json:"event"`
	Data  NotificationData  `json:"data"`
}

// NotificationData describes who did what to whom.
//   - ActorID is the pet that reacted.
//   - RecipientID is the post that received the reaction.
//   - ResponsibleID is the responsible of the post's author pet.
type NotificationData struct {
	Type          string    `json:"type"`
	ActorID       string    `json:"actorId"`
	RecipientID   string    `json:"recipientId"`
	ResponsibleID string    `json:"responsibleId"`
	Timestamp     time.Time `json:"timestamp"`
	Content       string    `json:"content"`
}

// LikeCountChanged is broadcast to live subscribers after a counter update.
type LikeCountChanged struct {
	PostID     string `json:"postId"`
	LikesCount int    `json:"likes_count"`
}
