package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleEvent() Event {
	return Event{
		ID: primitive.NewObjectID(),
		EventDetails: EventDetails{
			Title:     "Tech Open House 2026",
			Venue:     "IF-3C01",
			RadiusM:   50,
			IsCurrent: true,
			CreatedAt: time.Now().Add(-48 * time.Hour),
		},
	}
}

func TestBuildArchiveBundle(t *testing.T) {
	event := sampleEvent()
	archivedAt := time.Now()

	t.Run("TestBundleCarriesEverything", func(t *testing.T) {
		questions := &EventQuestions{
			EventID:   event.ID,
			Questions: []string{"Speaker quality", "Venue"},
		}
		fbs := []Feedback{
			{ID: primitive.NewObjectID(), EventID: event.ID, Sentiment: "positive"},
			{ID: primitive.NewObjectID(), EventID: event.ID, Sentiment: "negative"},
			{ID: primitive.NewObjectID(), EventID: event.ID, Sentiment: "spam"},
		}
		logs := []AttendanceLog{
			{ID: primitive.NewObjectID(), EventID: event.ID},
			{ID: primitive.NewObjectID(), EventID: event.ID},
		}

		bundle := BuildArchiveBundle(event, questions, fbs, logs, archivedAt)

		assert.Equal(t, "Tech Open House 2026", bundle.Title)
		assert.Equal(t, archivedAt, bundle.ArchivedAt)
		assert.Len(t, bundle.Feedbacks, 3)
		assert.Len(t, bundle.AttendanceLogs, 2)
		assert.NotNil(t, bundle.Questions)
	})

	t.Run("TestNilDependentsBecomeEmpty", func(t *testing.T) {
		bundle := BuildArchiveBundle(event, nil, nil, nil, archivedAt)

		assert.NotNil(t, bundle.Feedbacks)
		assert.Empty(t, bundle.Feedbacks)
		assert.NotNil(t, bundle.AttendanceLogs)
		assert.Empty(t, bundle.AttendanceLogs)
		assert.Nil(t, bundle.Questions)
	})
}

func TestExplodeBundle(t *testing.T) {
	oldEventID := primitive.NewObjectID()
	oldFeedbackID := primitive.NewObjectID()
	oldLogID := primitive.NewObjectID()

	bundle := ArchivedEvent{
		ID: primitive.NewObjectID(),
		EventDetails: EventDetails{
			Title:     "Tech Open House 2026",
			IsCurrent: true,
		},
		ArchivedAt: time.Now().Add(-time.Hour),
		Questions: &EventQuestions{
			ID:        primitive.NewObjectID(),
			EventID:   oldEventID,
			Questions: []string{"Speaker quality"},
		},
		Feedbacks: []Feedback{
			{ID: oldFeedbackID, EventID: oldEventID, Comment: "loved it", Sentiment: "positive"},
		},
		AttendanceLogs: []AttendanceLog{
			{ID: oldLogID, EventID: oldEventID, StudentID: "6400000001"},
		},
	}

	newEventID := primitive.NewObjectID()
	restoredAt := time.Now()
	event, questions, fbs, logs := ExplodeBundle(bundle, newEventID, restoredAt)

	t.Run("TestEventGetsNewIdentity", func(t *testing.T) {
		assert.Equal(t, newEventID, event.ID)
		assert.Equal(t, "Tech Open House 2026", event.Title)
		assert.NotNil(t, event.RestoredAt)
		// restored events never steal the current flag
		assert.False(t, event.IsCurrent)
	})

	t.Run("TestDependentsRepointed", func(t *testing.T) {
		assert.Len(t, fbs, 1)
		assert.NotEqual(t, oldFeedbackID, fbs[0].ID)
		assert.Equal(t, newEventID, fbs[0].EventID)

		assert.Len(t, logs, 1)
		assert.NotEqual(t, oldLogID, logs[0].ID)
		assert.Equal(t, newEventID, logs[0].EventID)
		assert.Equal(t, "6400000001", logs[0].StudentID)

		assert.NotNil(t, questions)
		assert.Equal(t, newEventID, questions.EventID)
		assert.True(t, questions.ID.IsZero())
	})

	t.Run("TestSentimentSurvivesUnchanged", func(t *testing.T) {
		// the stored category rides along, no fresh classification on restore
		assert.Equal(t, "positive", fbs[0].Sentiment)
	})

	t.Run("TestNoQuestionsInBundle", func(t *testing.T) {
		noQuestions := bundle
		noQuestions.Questions = nil

		_, q, _, _ := ExplodeBundle(noQuestions, primitive.NewObjectID(), restoredAt)
		assert.Nil(t, q)
	})
}
