package sentiment

import (
	"log"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// หมวดผลการจำแนก comment
const (
	CategoryPositive = "positive"
	CategoryNegative = "negative"
	CategorySpam     = "spam"
	CategoryNeutral  = "neutral"
)

// FallbackCategory ใช้กับ comment ว่างและ compound ช่วงกลาง
// ตรึงไว้ที่ spam ให้ console คัดกรองเอง (neutral เหลือไว้รองรับค่าเก่าใน store)
const FallbackCategory = CategorySpam

// spamWords block-list แบบ substring, case-insensitive
var spamWords = []string{
	"http://",
	"https://",
	"buy now",
	"promo",
	"free $$$",
	"visit my",
}

var longGibberish = regexp.MustCompile(`^[a-z]{15,}$`)

var (
	analyzerOnce sync.Once
	analyzer     *govader.SentimentIntensityAnalyzer
)

func getAnalyzer() *govader.SentimentIntensityAnalyzer {
	analyzerOnce.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})
	return analyzer
}

// Classify จำแนก comment เป็น positive / negative / spam
// ฟังก์ชัน pure, deterministic และไม่ panic ไม่ว่า input จะเป็นอะไร
func Classify(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return FallbackCategory
	}

	for _, w := range spamWords {
		if strings.Contains(lower, w) {
			return CategorySpam
		}
	}

	// ข้อความมั่ว: ไม่มีสระเลย หรือยาวติดกัน 15 ตัวอักษรไม่มีช่องว่าง
	noVowels := !strings.ContainsAny(lower, "aeiou")
	if noVowels || longGibberish.MatchString(lower) {
		return CategorySpam
	}

	compound, ok := compoundScore(text)
	if ok {
		if compound >= 0.05 {
			return CategoryPositive
		}
		if compound <= -0.05 {
			return CategoryNegative
		}
	}

	return FallbackCategory
}

// compoundScore ครอบ scorer ไว้ด้วย recover - การจำแนกห้ามล้มถึง caller
func compoundScore(text string) (compound float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("⚠️ sentiment scorer panic:", r)
			ok = false
		}
	}()

	scores := getAnalyzer().PolarityScores(text)
	return scores.Compound, true
}

// Average ค่าเฉลี่ยคะแนน rating - ค่าว่าง/ไม่มีตัวเลขที่ใช้ได้ = 0
// คืนค่าความละเอียดเต็ม การปัดเศษเป็นเรื่องของชั้นแสดงผล
func Average(ratings []float64) float64 {
	var sum float64
	var n int
	for _, r := range ratings {
		if math.IsNaN(r) {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Round2 ปัดเป็นทศนิยม 2 ตำแหน่งสำหรับแสดงผล (_avg)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
