package models

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventQuestionsValidation(t *testing.T) {
	validate := validator.New()

	makeQuestions := func(n int) []string {
		qs := make([]string, 0, n)
		for i := 0; i < n; i++ {
			qs = append(qs, fmt.Sprintf("Question %d", i+1))
		}
		return qs
	}

	t.Run("TestWithinCap", func(t *testing.T) {
		q := EventQuestions{
			EventID:   primitive.NewObjectID(),
			Questions: makeQuestions(MaxRatedQuestions),
		}
		assert.NoError(t, validate.Struct(q))
	})

	t.Run("TestOverCapRejected", func(t *testing.T) {
		q := EventQuestions{
			EventID:   primitive.NewObjectID(),
			Questions: makeQuestions(MaxRatedQuestions + 1),
		}
		assert.Error(t, validate.Struct(q))
	})

	t.Run("TestEmptyQuestionRejected", func(t *testing.T) {
		q := EventQuestions{
			EventID:   primitive.NewObjectID(),
			Questions: []string{"Speaker quality", ""},
		}
		assert.Error(t, validate.Struct(q))
	})

	t.Run("TestCapConstant", func(t *testing.T) {
		assert.Equal(t, 10, MaxRatedQuestions)
	})
}
