package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceLog บันทึกการเช็คชื่อ (ฝั่ง client เป็นผู้ตรวจ geofence)
type AttendanceLog struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	EventID     primitive.ObjectID  `bson:"eventId" json:"eventId"`
	UserID      *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	StudentID   string              `bson:"studentId,omitempty" json:"studentId"`
	Status      string              `bson:"status" json:"status"` // validated | flagged
	DistanceM   float64             `bson:"distanceM,omitempty" json:"distanceM"`
	CheckedInAt FlexTime            `bson:"checkedInAt,omitempty" json:"checkedInAt"`
}
