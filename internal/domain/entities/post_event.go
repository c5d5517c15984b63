package entities

import "time"

type PostEventType string

const (
	PostCreated PostEventType = "created"
	PostUpdated PostEventType = "updated"
	PostDeleted PostEventType = "deleted"
)

// PostEvent announces a committed post mutation.
type PostEvent struct {
	Type       PostEventType `json:"type"`
	PostId     string        `json:"post_id"`
	UserId     string        `json:"user_id"`
	Title      string        `json:"title,omitempty"`
	Status     string        `json:"status,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func NewPostEvent(eventType PostEventType, post *Post) PostEvent {
	return PostEvent{
		Type:       eventType,
		PostId:     post.Id,
		UserId:     post.UserId,
		Title:      post.Title,
		Status:     post.Status,
		OccurredAt: time.Now().UTC(),
	}
}
