package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxRatedQuestions เพดานจำนวนคำถามแบบให้คะแนนต่อ event (hard invariant)
const MaxRatedQuestions = 10

// EventQuestions ชุดคำถามประจำ event (1:1 กับ event)
// ratings[i] / answers[i] ใน Feedback ชี้ตำแหน่งเดียวกับ questions[i] / openEnded[i]
type EventQuestions struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID   primitive.ObjectID `bson:"eventId" json:"eventId"`
	Questions []string           `bson:"questions" json:"questions" validate:"max=10,dive,required"`
	OpenEnded []string           `bson:"openEnded" json:"openEnded" validate:"dive,required"`
}
