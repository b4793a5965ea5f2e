package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ratingDoc struct {
	Ratings RatingList `bson:"ratings"`
}

type answerDoc struct {
	Answers AnswerList `bson:"answers"`
}

type timeDoc struct {
	CreatedAt FlexTime `bson:"createdAt"`
}

func TestRatingListDecode(t *testing.T) {
	t.Run("TestArrayShape", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"ratings": bson.A{int32(5), 4.0, int64(3)}})
		assert.NoError(t, err)

		var doc ratingDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, RatingList{5, 4, 3}, doc.Ratings)
	})

	t.Run("TestNumericStringsCoerced", func(t *testing.T) {
		// legacy clients stored some scores as strings
		raw, err := bson.Marshal(bson.M{"ratings": bson.A{"3", "x", int32(5)}})
		assert.NoError(t, err)

		var doc ratingDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, RatingList{3, 5}, doc.Ratings)
	})

	t.Run("TestKeyedMapShape", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"ratings": bson.D{
			{Key: "1", Value: int32(4)},
			{Key: "10", Value: int32(3)},
			{Key: "0", Value: int32(5)},
		}})
		assert.NoError(t, err)

		var doc ratingDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		// keys sort numerically, not lexically ("10" after "1")
		assert.Equal(t, RatingList{5, 4, 3}, doc.Ratings)
	})

	t.Run("TestMissingField", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{})
		assert.NoError(t, err)

		var doc ratingDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Empty(t, doc.Ratings)
	})
}

func TestAnswerListDecode(t *testing.T) {
	t.Run("TestArrayShape", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"answers": bson.A{"first", "second"}})
		assert.NoError(t, err)

		var doc answerDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, AnswerList{"first", "second"}, doc.Answers)
	})

	t.Run("TestKeyedMapShape", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"answers": bson.D{
			{Key: "1", Value: "second"},
			{Key: "0", Value: "first"},
		}})
		assert.NoError(t, err)

		var doc answerDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, AnswerList{"first", "second"}, doc.Answers)
	})

	t.Run("TestNonStringValuesSkipped", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"answers": bson.A{"kept", int32(7)}})
		assert.NoError(t, err)

		var doc answerDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, AnswerList{"kept"}, doc.Answers)
	})
}

func TestFlexTimeDecode(t *testing.T) {
	t.Run("TestDateTime", func(t *testing.T) {
		want := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
		raw, err := bson.Marshal(bson.M{"createdAt": want})
		assert.NoError(t, err)

		var doc timeDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.True(t, doc.CreatedAt.Time.Equal(want))
	})

	t.Run("TestEpochMillis", func(t *testing.T) {
		millis := int64(1700000000000)
		raw, err := bson.Marshal(bson.M{"createdAt": millis})
		assert.NoError(t, err)

		var doc timeDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, time.UnixMilli(millis).Unix(), doc.CreatedAt.Time.Unix())
	})

	t.Run("TestRFC3339String", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"createdAt": "2026-03-15T09:30:00Z"})
		assert.NoError(t, err)

		var doc timeDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, 2026, doc.CreatedAt.Time.Year())
	})

	t.Run("TestUnreadableValueIsZero", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"createdAt": "not a timestamp"})
		assert.NoError(t, err)

		var doc timeDoc
		assert.NoError(t, bson.Unmarshal(raw, &doc))
		assert.True(t, doc.CreatedAt.Time.IsZero())
	})
}

func TestRawStudentID(t *testing.T) {
	anonymousEntry := Feedback{}
	assert.Equal(t, "-", anonymousEntry.RawStudentID())

	userID := primitive.NewObjectID()
	entry := Feedback{UserID: &userID}
	assert.Equal(t, userID.Hex(), entry.RawStudentID())
}
