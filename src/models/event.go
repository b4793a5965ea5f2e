package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventDetails ฟิลด์ของ event ที่ถูก copy เข้า archive bundle ทั้งชุด
// แยกออกมาเพื่อให้ spread ได้โดยไม่ชน _id
type EventDetails struct {
	Title       string    `bson:"title" json:"title" validate:"required"`
	Description string    `bson:"description,omitempty" json:"description"`
	Venue       string    `bson:"venue,omitempty" json:"venue"`
	Latitude    float64   `bson:"latitude" json:"latitude"`
	Longitude   float64   `bson:"longitude" json:"longitude"`
	RadiusM     float64   `bson:"radiusM" json:"radiusM" validate:"gt=0"`
	StartAt     time.Time `bson:"startAt" json:"startAt"`
	EndAt       time.Time `bson:"endAt" json:"endAt"`
	IsCurrent   bool      `bson:"isCurrent" json:"isCurrent"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt"`
}

// Event กิจกรรมที่เปิดให้เช็คชื่อและส่ง feedback
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventDetails `bson:",inline"`
	RestoredAt   *time.Time `bson:"restoredAt,omitempty" json:"restoredAt,omitempty"`
}
