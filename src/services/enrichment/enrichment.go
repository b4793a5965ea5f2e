package enrichment

import (
	"sort"
	"time"

	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/sentiment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterAll ค่า filter เริ่มต้น (แสดงทุกหมวด)
const FilterAll = "all"

// DistinctUserIDs รวบรวม userId ที่ต้อง resolve (รวม record ที่ anonymous ด้วย
// เพราะ student ID ยังต้องแสดงเพื่อ audit)
func DistinctUserIDs(fbs []models.Feedback) []primitive.ObjectID {
	seen := map[string]bool{}
	var ids []primitive.ObjectID
	for _, fb := range fbs {
		if fb.UserID == nil {
			continue
		}
		hex := fb.UserID.Hex()
		if seen[hex] {
			continue
		}
		seen[hex] = true
		ids = append(ids, *fb.UserID)
	}
	return ids
}

// BuildEnriched ประกอบ EnrichedFeedback จาก record ดิบ + ข้อมูลผู้ใช้ที่ resolve แล้ว
// จำแนก sentiment สดทุกครั้ง (idempotent) และเรียง createdAt ใหม่สุดก่อน
func BuildEnriched(fbs []models.Feedback, userMap map[string]models.ResolvedUser) []models.EnrichedFeedback {
	enriched := make([]models.EnrichedFeedback, 0, len(fbs))

	for _, fb := range fbs {
		e := models.EnrichedFeedback{Feedback: fb}
		e.Sentiment = sentiment.Classify(fb.Comment)
		e.Avg = sentiment.Round2(sentiment.Average(fb.Ratings))
		resolveDisplay(&e, userMap)
		enriched = append(enriched, e)
	}

	sortByCreatedAtDesc(enriched)
	return enriched
}

// ArchivedUserIDs รวบรวม userId ฝั่ง archive ที่ต้อง resolve
func ArchivedUserIDs(afs []models.ArchivedFeedback) []primitive.ObjectID {
	fbs := make([]models.Feedback, len(afs))
	for i, af := range afs {
		fbs[i] = af.Feedback
	}
	return DistinctUserIDs(fbs)
}

// BuildEnrichedArchived เหมือน BuildEnriched แต่ใช้ sentiment ที่ cache มากับ record
// ก่อน (ฝั่ง archive ไม่คำนวณซ้ำ) fallback เป็นการจำแนกสดเมื่อไม่มี cache
// และเรียงตามเวลาที่ archive ล่าสุดก่อน
func BuildEnrichedArchived(afs []models.ArchivedFeedback, userMap map[string]models.ResolvedUser) []models.EnrichedFeedback {
	enriched := make([]models.EnrichedFeedback, 0, len(afs))

	for _, af := range afs {
		e := models.EnrichedFeedback{Feedback: af.Feedback}
		if af.Sentiment != "" {
			e.Sentiment = af.Sentiment
		} else {
			e.Sentiment = sentiment.Classify(af.Comment)
		}
		e.Avg = sentiment.Round2(sentiment.Average(af.Ratings))
		resolveDisplay(&e, userMap)
		at := af.ArchivedAt
		e.ArchivedAt = &at
		enriched = append(enriched, e)
	}

	sortByArchivedAtDesc(enriched)
	return enriched
}

// resolveDisplay เติมชื่อกับรหัสนักศึกษา - anonymous ซ่อนเฉพาะชื่อ ไม่ซ่อนรหัส
func resolveDisplay(e *models.EnrichedFeedback, userMap map[string]models.ResolvedUser) {
	if e.UserID != nil {
		if u, ok := userMap[e.UserID.Hex()]; ok {
			e.DisplayName = u.DisplayName
			e.StudentID = u.IDNumber
		}
	}
	if e.StudentID == "" {
		e.StudentID = e.RawStudentID()
	}
	if e.Feedback.Anonymous {
		e.DisplayName = "Anonymous"
	} else if e.DisplayName == "" {
		e.DisplayName = "User"
	}
}

func sortByCreatedAtDesc(enriched []models.EnrichedFeedback) {
	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].CreatedAt.Time.After(enriched[j].CreatedAt.Time)
	})
}

func sortByArchivedAtDesc(enriched []models.EnrichedFeedback) {
	sort.SliceStable(enriched, func(i, j int) bool {
		var ti, tj time.Time
		if enriched[i].ArchivedAt != nil {
			ti = *enriched[i].ArchivedAt
		}
		if enriched[j].ArchivedAt != nil {
			tj = *enriched[j].ArchivedAt
		}
		return ti.After(tj)
	})
}

// CountBySentiment นับจากชุดเต็มเสมอ ไม่ขึ้นกับ filter ที่เลือกอยู่
func CountBySentiment(enriched []models.EnrichedFeedback) models.SentimentCounts {
	counts := models.SentimentCounts{Total: len(enriched)}
	for _, e := range enriched {
		switch e.Sentiment {
		case sentiment.CategoryPositive:
			counts.Positive++
		case sentiment.CategoryNegative:
			counts.Negative++
		case sentiment.CategorySpam:
			counts.Spam++
		}
	}
	return counts
}

// FilterBySentiment เลือก subset ตาม filter - pure ไม่แตะ slice เดิม
func FilterBySentiment(enriched []models.EnrichedFeedback, active string) []models.EnrichedFeedback {
	if active == "" || active == FilterAll {
		return enriched
	}
	visible := make([]models.EnrichedFeedback, 0, len(enriched))
	for _, e := range enriched {
		if e.Sentiment == active {
			visible = append(visible, e)
		}
	}
	return visible
}
