package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildArchiveBundle ประกอบ bundle จาก event + dependents ทั้งหมด (pure)
// bundle เก็บทุกอย่างไว้ในเอกสารเดียว: {...eventFields, archivedAt, questions,
// feedbacks, attendanceLogs}
func BuildArchiveBundle(event Event, questions *EventQuestions,
	fbs []Feedback, logs []AttendanceLog, archivedAt time.Time) ArchivedEvent {

	if fbs == nil {
		fbs = []Feedback{}
	}
	if logs == nil {
		logs = []AttendanceLog{}
	}

	return ArchivedEvent{
		EventDetails:   event.EventDetails,
		ArchivedAt:     archivedAt,
		Questions:      questions,
		Feedbacks:      fbs,
		AttendanceLogs: logs,
	}
}

// ExplodeBundle แตก bundle กลับเป็นเอกสารแยกชุด (pure) - ทุกตัวได้ ID ใหม่
// และ dependents ถูกชี้ไปที่ newEventID (ห้าม resolve ด้วย ID เดิม)
func ExplodeBundle(bundle ArchivedEvent, newEventID primitive.ObjectID,
	restoredAt time.Time) (Event, *EventQuestions, []Feedback, []AttendanceLog) {

	event := Event{
		ID:           newEventID,
		EventDetails: bundle.EventDetails,
		RestoredAt:   &restoredAt,
	}
	// event ที่ restore กลับมาไม่แย่ง current flag
	event.IsCurrent = false

	var questions *EventQuestions
	if bundle.Questions != nil {
		q := *bundle.Questions
		q.ID = primitive.NilObjectID
		q.EventID = newEventID
		questions = &q
	}

	fbs := make([]Feedback, 0, len(bundle.Feedbacks))
	for _, fb := range bundle.Feedbacks {
		fb.ID = primitive.NewObjectID()
		fb.EventID = newEventID
		// sentiment ที่ cache ไว้ติดมากับ record - ไม่จำแนกใหม่ตอน restore
		fbs = append(fbs, fb)
	}

	logs := make([]AttendanceLog, 0, len(bundle.AttendanceLogs))
	for _, l := range bundle.AttendanceLogs {
		l.ID = primitive.NewObjectID()
		l.EventID = newEventID
		logs = append(logs, l)
	}

	return event, questions, fbs, logs
}
