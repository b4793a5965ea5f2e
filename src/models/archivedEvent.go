package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArchivedEvent bundle เก็บ event พร้อม dependents ทั้งหมดในเอกสารเดียว
// {...eventFields, archivedAt, questions, feedbacks, attendanceLogs}
type ArchivedEvent struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventDetails   `bson:",inline"`
	ArchivedAt     time.Time       `bson:"archivedAt" json:"archivedAt"`
	Questions      *EventQuestions `bson:"questions,omitempty" json:"questions,omitempty"`
	Feedbacks      []Feedback      `bson:"feedbacks" json:"feedbacks"`
	AttendanceLogs []AttendanceLog `bson:"attendanceLogs" json:"attendanceLogs"`
}

// ArchivedFeedback feedback เดี่ยวที่ถูกย้ายไป partition archive
type ArchivedFeedback struct {
	Feedback   `bson:",inline"`
	ArchivedAt time.Time `bson:"archivedAt" json:"archivedAt"`
}
