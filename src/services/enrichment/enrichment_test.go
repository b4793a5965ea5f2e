package enrichment

import (
	"testing"
	"time"

	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/sentiment"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func feedbackAt(comment string, ratings []float64, createdAt time.Time) models.Feedback {
	return models.Feedback{
		ID:        primitive.NewObjectID(),
		EventID:   primitive.NewObjectID(),
		Comment:   comment,
		Ratings:   ratings,
		CreatedAt: models.FlexTime{Time: createdAt},
	}
}

func TestDistinctUserIDs(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()

	fbs := []models.Feedback{
		{UserID: &userA},
		{UserID: &userA}, // duplicate
		{UserID: &userB, Anonymous: true},
		{UserID: nil},
	}

	ids := DistinctUserIDs(fbs)
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, userA)
	// anonymous records are still resolved (student ID stays visible)
	assert.Contains(t, ids, userB)
}

func TestBuildEnriched(t *testing.T) {
	now := time.Now()

	t.Run("TestSentimentAndAverage", func(t *testing.T) {
		fbs := []models.Feedback{
			feedbackAt("I loved it, great event!", []float64{5, 4}, now),
			feedbackAt("Terrible event, I hated it", []float64{1, 2}, now.Add(-time.Hour)),
			feedbackAt("buy now promo", nil, now.Add(-2*time.Hour)),
		}

		enriched := BuildEnriched(fbs, nil)
		assert.Len(t, enriched, 3)

		assert.Equal(t, sentiment.CategoryPositive, enriched[0].Sentiment)
		assert.Equal(t, 4.5, enriched[0].Avg)

		assert.Equal(t, sentiment.CategoryNegative, enriched[1].Sentiment)
		assert.Equal(t, 1.5, enriched[1].Avg)

		assert.Equal(t, sentiment.CategorySpam, enriched[2].Sentiment)
		assert.Equal(t, 0.0, enriched[2].Avg)
	})

	t.Run("TestEmptyCommentAllFives", func(t *testing.T) {
		// high scores with no comment: perfect average, spam category
		fb := feedbackAt("", []float64{5, 5, 5, 5, 5}, now)

		enriched := BuildEnriched([]models.Feedback{fb}, nil)
		assert.Equal(t, sentiment.CategorySpam, enriched[0].Sentiment)
		assert.Equal(t, 5.0, enriched[0].Avg)
	})

	t.Run("TestNormalizedRatingsAverage", func(t *testing.T) {
		// RatingList decode already dropped the non-numeric entry
		fb := feedbackAt("I loved it, great event!", []float64{3, 5}, now)

		enriched := BuildEnriched([]models.Feedback{fb}, nil)
		assert.Equal(t, 4.0, enriched[0].Avg)
	})

	t.Run("TestSortNewestFirst", func(t *testing.T) {
		fbs := []models.Feedback{
			feedbackAt("oldest entry here", nil, now.Add(-2*time.Hour)),
			feedbackAt("newest entry here", nil, now),
			feedbackAt("middle entry here", nil, now.Add(-time.Hour)),
		}

		enriched := BuildEnriched(fbs, nil)
		assert.Equal(t, "newest entry here", enriched[0].Comment)
		assert.Equal(t, "middle entry here", enriched[1].Comment)
		assert.Equal(t, "oldest entry here", enriched[2].Comment)
	})

	t.Run("TestMissingTimestampSortsLast", func(t *testing.T) {
		fbs := []models.Feedback{
			feedbackAt("no timestamp", nil, time.Time{}),
			feedbackAt("has timestamp", nil, now),
		}

		enriched := BuildEnriched(fbs, nil)
		assert.Equal(t, "has timestamp", enriched[0].Comment)
		assert.Equal(t, "no timestamp", enriched[1].Comment)
	})

	t.Run("TestUserResolution", func(t *testing.T) {
		userID := primitive.NewObjectID()
		fb := feedbackAt("I loved it, great event!", nil, now)
		fb.UserID = &userID

		userMap := map[string]models.ResolvedUser{
			userID.Hex(): {DisplayName: "Somchai Jaidee", IDNumber: "6400000001"},
		}

		enriched := BuildEnriched([]models.Feedback{fb}, userMap)
		assert.Equal(t, "Somchai Jaidee", enriched[0].DisplayName)
		assert.Equal(t, "6400000001", enriched[0].StudentID)
	})

	t.Run("TestAnonymousHidesNameOnly", func(t *testing.T) {
		userID := primitive.NewObjectID()
		fb := feedbackAt("I loved it, great event!", nil, now)
		fb.UserID = &userID
		fb.Anonymous = true

		userMap := map[string]models.ResolvedUser{
			userID.Hex(): {DisplayName: "Somchai Jaidee", IDNumber: "6400000001"},
		}

		enriched := BuildEnriched([]models.Feedback{fb}, userMap)
		assert.Equal(t, "Anonymous", enriched[0].DisplayName)
		// student ID stays visible for audit even when anonymous
		assert.Equal(t, "6400000001", enriched[0].StudentID)
	})

	t.Run("TestUnresolvedUserFallback", func(t *testing.T) {
		fb := feedbackAt("I loved it, great event!", nil, now)

		enriched := BuildEnriched([]models.Feedback{fb}, nil)
		assert.Equal(t, "User", enriched[0].DisplayName)
		assert.Equal(t, "-", enriched[0].StudentID)
	})

	t.Run("TestIdempotent", func(t *testing.T) {
		fbs := []models.Feedback{
			feedbackAt("I loved it, great event!", []float64{5}, now),
			feedbackAt("buy now", nil, now.Add(-time.Hour)),
		}

		first := BuildEnriched(fbs, nil)
		second := BuildEnriched(fbs, nil)
		assert.Equal(t, first, second)
	})
}

func archivedAt(comment string, createdAt, archived time.Time) models.ArchivedFeedback {
	return models.ArchivedFeedback{
		Feedback:   feedbackAt(comment, nil, createdAt),
		ArchivedAt: archived,
	}
}

func TestBuildEnrichedArchived(t *testing.T) {
	now := time.Now()

	t.Run("TestCachedSentimentWins", func(t *testing.T) {
		// stored category is kept even when a fresh pass would disagree
		af := archivedAt("I loved it, great event!", now, now)
		af.Sentiment = sentiment.CategoryNegative

		enriched := BuildEnrichedArchived([]models.ArchivedFeedback{af}, nil)
		assert.Equal(t, sentiment.CategoryNegative, enriched[0].Sentiment)
	})

	t.Run("TestMissingSentimentClassifiedFresh", func(t *testing.T) {
		af := archivedAt("I loved it, great event!", now, now)

		enriched := BuildEnrichedArchived([]models.ArchivedFeedback{af}, nil)
		assert.Equal(t, sentiment.CategoryPositive, enriched[0].Sentiment)
	})

	t.Run("TestSortByArchiveTimeNotCreation", func(t *testing.T) {
		// the archive view orders by when records were archived, newest first,
		// even when creation order disagrees
		afs := []models.ArchivedFeedback{
			archivedAt("created last, archived first", now, now.Add(-2*time.Hour)),
			archivedAt("created first, archived last", now.Add(-3*time.Hour), now),
			archivedAt("archived in between", now.Add(-time.Hour), now.Add(-time.Hour)),
		}

		enriched := BuildEnrichedArchived(afs, nil)
		assert.Equal(t, "created first, archived last", enriched[0].Comment)
		assert.Equal(t, "archived in between", enriched[1].Comment)
		assert.Equal(t, "created last, archived first", enriched[2].Comment)
	})

	t.Run("TestArchivedAtSurfaced", func(t *testing.T) {
		when := now.Add(-time.Hour)
		enriched := BuildEnrichedArchived([]models.ArchivedFeedback{
			archivedAt("I loved it, great event!", now, when),
		}, nil)

		if assert.NotNil(t, enriched[0].ArchivedAt) {
			assert.Equal(t, when, *enriched[0].ArchivedAt)
		}
	})
}

func TestCountBySentiment(t *testing.T) {
	now := time.Now()
	fbs := []models.Feedback{
		feedbackAt("I loved it, great event!", nil, now),
		feedbackAt("Amazing speakers, wonderful event", nil, now),
		feedbackAt("Terrible event, I hated it", nil, now),
		feedbackAt("buy now promo", nil, now),
	}

	enriched := BuildEnriched(fbs, nil)
	counts := CountBySentiment(enriched)

	assert.Equal(t, len(enriched), counts.Total)
	assert.Equal(t, 2, counts.Positive)
	assert.Equal(t, 1, counts.Negative)
	assert.Equal(t, 1, counts.Spam)

	// counts are computed from the full set, never from the filtered view
	filtered := FilterBySentiment(enriched, sentiment.CategoryPositive)
	assert.Equal(t, counts, CountBySentiment(enriched))
	assert.Len(t, filtered, 2)
}

func TestFilterBySentiment(t *testing.T) {
	now := time.Now()
	fbs := []models.Feedback{
		feedbackAt("I loved it, great event!", nil, now),
		feedbackAt("Terrible event, I hated it", nil, now),
	}
	enriched := BuildEnriched(fbs, nil)

	t.Run("TestFilterAll", func(t *testing.T) {
		assert.Len(t, FilterBySentiment(enriched, FilterAll), 2)
		assert.Len(t, FilterBySentiment(enriched, ""), 2)
	})

	t.Run("TestFilterExactCategory", func(t *testing.T) {
		positive := FilterBySentiment(enriched, sentiment.CategoryPositive)
		assert.Len(t, positive, 1)
		assert.Equal(t, sentiment.CategoryPositive, positive[0].Sentiment)
	})

	t.Run("TestFilterUnknownCategory", func(t *testing.T) {
		assert.Empty(t, FilterBySentiment(enriched, "meh"))
	})

	t.Run("TestFilterDoesNotMutate", func(t *testing.T) {
		before := len(enriched)
		_ = FilterBySentiment(enriched, sentiment.CategoryNegative)
		assert.Len(t, enriched, before)
	})
}
