package models

import (
	"sort"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback ความคิดเห็นของผู้เข้าร่วมต่อ event หนึ่งรายการ
type Feedback struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	EventID    primitive.ObjectID  `bson:"eventId" json:"eventId"`
	UserID     *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Anonymous  bool                `bson:"anonymous" json:"anonymous"`
	Ratings    RatingList          `bson:"ratings,omitempty" json:"ratings"`
	Comment    string              `bson:"comment,omitempty" json:"comment"`
	Answers    AnswerList          `bson:"answers,omitempty" json:"answers"`
	Sentiment  string              `bson:"sentiment,omitempty" json:"sentiment,omitempty"`
	CreatedAt  FlexTime            `bson:"createdAt,omitempty" json:"createdAt"`
	RestoredAt *time.Time          `bson:"restoredAt,omitempty" json:"restoredAt,omitempty"`
}

// EnrichedFeedback ข้อมูล Feedback ที่ผ่าน pipeline แล้ว (ไม่ persist)
type EnrichedFeedback struct {
	Feedback
	Sentiment   string     `bson:"-" json:"_sentiment"`
	Avg         float64    `bson:"-" json:"_avg"`
	StudentID   string     `bson:"-" json:"studentId"`
	DisplayName string     `bson:"-" json:"displayName"`
	ArchivedAt  *time.Time `bson:"-" json:"archivedAt,omitempty"` // เฉพาะ view ฝั่ง archive
}

// SentimentCounts ยอดรวมต่อ event สำหรับ filter pills
type SentimentCounts struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Spam     int `json:"spam"`
}

// RatingList คะแนนรายข้อ เก็บในฐานข้อมูลได้ทั้งแบบ array และแบบ keyed map
// เช่น {"0": 5, "1": "4"} - แปลงให้เป็น ordered slice ที่จุดเดียวตรงนี้
type RatingList []float64

func (r *RatingList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	*r = nil

	switch t {
	case bson.TypeArray:
		arr, err := rv.Array().Values()
		if err != nil {
			return nil // corrupt array → ปล่อยว่าง ไม่ให้ batch ล้ม
		}
		for _, v := range arr {
			if n, ok := coerceNumber(v); ok {
				*r = append(*r, n)
			}
		}
	case bson.TypeEmbeddedDocument:
		elems, err := rv.Document().Elements()
		if err != nil {
			return nil
		}
		sortByNumericKey(elems)
		for _, e := range elems {
			if n, ok := coerceNumber(e.Value()); ok {
				*r = append(*r, n)
			}
		}
	}
	return nil
}

// AnswerList คำตอบปลายเปิด รองรับทั้ง array และ keyed map เช่นเดียวกับ RatingList
type AnswerList []string

func (a *AnswerList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	*a = nil

	switch t {
	case bson.TypeArray:
		arr, err := rv.Array().Values()
		if err != nil {
			return nil
		}
		for _, v := range arr {
			if s, ok := v.StringValueOK(); ok {
				*a = append(*a, s)
			}
		}
	case bson.TypeEmbeddedDocument:
		elems, err := rv.Document().Elements()
		if err != nil {
			return nil
		}
		sortByNumericKey(elems)
		for _, e := range elems {
			if s, ok := e.Value().StringValueOK(); ok {
				*a = append(*a, s)
			}
		}
	}
	return nil
}

// FlexTime timestamp ที่เก็บมาได้หลายแบบ (datetime, epoch millis, ISO string)
// ค่าที่อ่านไม่ได้ = zero time เพื่อให้เรียงเป็นรายการเก่าสุด
type FlexTime struct {
	time.Time
}

func (f *FlexTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	f.Time = time.Time{}

	switch t {
	case bson.TypeDateTime:
		f.Time = rv.Time()
	case bson.TypeTimestamp:
		sec, _ := rv.Timestamp()
		f.Time = time.Unix(int64(sec), 0)
	case bson.TypeInt64:
		f.Time = time.UnixMilli(rv.Int64())
	case bson.TypeInt32:
		f.Time = time.UnixMilli(int64(rv.Int32()))
	case bson.TypeDouble:
		f.Time = time.UnixMilli(int64(rv.Double()))
	case bson.TypeString:
		if parsed, err := time.Parse(time.RFC3339, rv.StringValue()); err == nil {
			f.Time = parsed
		}
	}
	return nil
}

func (f FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(f.Time)
}

func coerceNumber(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bson.TypeDouble:
		return v.Double(), true
	case bson.TypeInt32:
		return float64(v.Int32()), true
	case bson.TypeInt64:
		return float64(v.Int64()), true
	case bson.TypeString:
		n, err := strconv.ParseFloat(v.StringValue(), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// sortByNumericKey เรียง element ตาม key แบบตัวเลข ("0","1","2",...,"10")
func sortByNumericKey(elems []bson.RawElement) {
	sort.SliceStable(elems, func(i, j int) bool {
		a, errA := strconv.Atoi(elems[i].Key())
		b, errB := strconv.Atoi(elems[j].Key())
		if errA != nil || errB != nil {
			return elems[i].Key() < elems[j].Key()
		}
		return a < b
	})
}

// RawStudentID คืน identifier สำหรับแสดงผลเมื่อ resolve user ไม่ได้
func (fb *Feedback) RawStudentID() string {
	if fb.UserID == nil {
		return "-"
	}
	return fb.UserID.Hex()
}
