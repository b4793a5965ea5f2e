package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification ประกาศที่ broadcast ถึงผู้เข้าร่วม
type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title     string              `bson:"title" json:"title" validate:"required"`
	Body      string              `bson:"body" json:"body" validate:"required"`
	Audience  string              `bson:"audience" json:"audience"` // all | event
	EventID   *primitive.ObjectID `bson:"eventId,omitempty" json:"eventId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	SentAt    *time.Time          `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
}
