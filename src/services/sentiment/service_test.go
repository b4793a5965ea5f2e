package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("TestEmptyComment", func(t *testing.T) {
		assert.Equal(t, CategorySpam, Classify(""))
		assert.Equal(t, CategorySpam, Classify("   "))
		assert.Equal(t, CategorySpam, Classify("\n\t"))
	})

	t.Run("TestSpamWordDetection", func(t *testing.T) {
		spamComments := []string{
			"check out http://example.com",
			"https://totally-legit.example",
			"BUY NOW and save big",
			"limited promo today only",
			"free $$$ for everyone",
			"Visit my site http://x.com for free gifts",
		}

		for _, comment := range spamComments {
			assert.Equal(t, CategorySpam, Classify(comment), "comment: %s", comment)
		}
	})

	t.Run("TestGibberishDetection", func(t *testing.T) {
		// no vowels at all
		assert.Equal(t, CategorySpam, Classify("hjkl qwrtps zxcvb"))

		// 15+ letters with no separators
		assert.Equal(t, CategorySpam, Classify("asdkjhasdkjhasdlkjh"))
	})

	t.Run("TestPositiveComment", func(t *testing.T) {
		positive := []string{
			"I loved it, great event!",
			"Amazing speakers and wonderful activities, thank you so much",
		}

		for _, comment := range positive {
			assert.Equal(t, CategoryPositive, Classify(comment), "comment: %s", comment)
		}
	})

	t.Run("TestNegativeComment", func(t *testing.T) {
		negative := []string{
			"Terrible event, I hated it",
			"The food was awful and the queues were horrible",
		}

		for _, comment := range negative {
			assert.Equal(t, CategoryNegative, Classify(comment), "comment: %s", comment)
		}
	})

	t.Run("TestNeutralFallsBackToSpam", func(t *testing.T) {
		// no sentiment-bearing words, compound stays inside the neutral band
		assert.Equal(t, FallbackCategory, Classify("the session started on monday"))
	})

	t.Run("TestNeverPanics", func(t *testing.T) {
		weird := []string{
			"🎉🎉🎉",
			"ดีมากเลยครับ",
			"\x00\x01\x02",
			"aeiou",
		}

		for _, comment := range weird {
			assert.NotPanics(t, func() {
				result := Classify(comment)
				assert.Contains(t, []string{
					CategoryPositive, CategoryNegative, CategorySpam, CategoryNeutral,
				}, result)
			})
		}
	})

	t.Run("TestDeterministic", func(t *testing.T) {
		comment := "I loved it, great event!"
		first := Classify(comment)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify(comment))
		}
	})
}

func TestAverage(t *testing.T) {
	t.Run("TestEmptyRatings", func(t *testing.T) {
		assert.Equal(t, 0.0, Average(nil))
		assert.Equal(t, 0.0, Average([]float64{}))
	})

	t.Run("TestSimpleAverage", func(t *testing.T) {
		assert.Equal(t, 5.0, Average([]float64{5, 5, 5}))
		assert.Equal(t, 4.5, Average([]float64{4, 5}))
	})

	t.Run("TestNaNSkipped", func(t *testing.T) {
		assert.Equal(t, 3.0, Average([]float64{4, math.NaN(), 2}))
		assert.Equal(t, 0.0, Average([]float64{math.NaN()}))
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 4.67, Round2(14.0/3.0))
	assert.Equal(t, 5.0, Round2(5.0))
	assert.Equal(t, 0.0, Round2(0))
}
