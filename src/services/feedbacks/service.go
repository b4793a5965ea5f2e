package feedbacks

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/services/enrichment"
	"Backend-CampusEvents/src/services/sentiment"
	"Backend-CampusEvents/src/services/users"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var feedbackCollection *mongo.Collection
var archivedFeedbackCollection *mongo.Collection

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	feedbackCollection = database.GetCollection("CampusEventsDB", "feedbacks")
	if feedbackCollection == nil {
		log.Fatal("Failed to get the feedbacks collection")
	}

	archivedFeedbackCollection = database.GetCollection("CampusEventsDB", "archived_feedbacks")
	if archivedFeedbackCollection == nil {
		log.Fatal("Failed to get the archived_feedbacks collection")
	}
}

// CreateFeedback - บันทึก feedback ใหม่ พร้อมจำแนก sentiment ตั้งแต่ตอนสร้าง
func CreateFeedback(feedback *models.Feedback) error {
	feedback.ID = primitive.NewObjectID()
	feedback.Sentiment = sentiment.Classify(feedback.Comment)
	if feedback.CreatedAt.Time.IsZero() {
		feedback.CreatedAt.Time = time.Now()
	}
	_, err := feedbackCollection.InsertOne(context.Background(), feedback)
	return err
}

// GetFeedbackByID - ดึง feedback ตาม ID
func GetFeedbackByID(id string) (*models.Feedback, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid feedback ID")
	}

	var feedback models.Feedback
	err = feedbackCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&feedback)
	if err != nil {
		return nil, err
	}

	return &feedback, nil
}

// DeleteFeedback - ลบ feedback
func DeleteFeedback(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid feedback ID")
	}

	_, err = feedbackCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	return err
}

// fetchByEvent อ่าน feedback ทั้งหมดของ event จาก collection ที่ระบุ
// record ที่ decode ไม่ได้ถูกข้าม ไม่ทำให้ทั้ง batch ล้ม
func fetchByEvent(ctx context.Context, col *mongo.Collection, eventID primitive.ObjectID) ([]models.Feedback, error) {
	cursor, err := col.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fbs []models.Feedback
	for cursor.Next(ctx) {
		var fb models.Feedback
		if err := cursor.Decode(&fb); err != nil {
			log.Println("⚠️ skip malformed feedback:", err)
			continue
		}
		fbs = append(fbs, fb)
	}

	return fbs, cursor.Err()
}

// GetEnrichedByEvent รัน enrichment pipeline เต็มชุดสำหรับ event หนึ่งรายการ:
// normalize → resolve users → classify สด → write-through sentiment → _avg → sort
func GetEnrichedByEvent(eventID string) ([]models.EnrichedFeedback, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fbs, err := fetchByEvent(ctx, feedbackCollection, objID)
	if err != nil {
		return nil, err
	}

	userMap := users.ResolveMany(ctx, enrichment.DistinctUserIDs(fbs))
	enriched := enrichment.BuildEnriched(fbs, userMap)

	// write-through cache: ค่าแสดงผลใช้ของสดเสมอ persist เป็น best-effort
	go persistSentiments(enriched)

	return enriched, nil
}

// fetchArchivedByEvent อ่านฝั่ง archive - decode เป็น ArchivedFeedback เพื่อเก็บ archivedAt ไว้
func fetchArchivedByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.ArchivedFeedback, error) {
	cursor, err := archivedFeedbackCollection.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var afs []models.ArchivedFeedback
	for cursor.Next(ctx) {
		var af models.ArchivedFeedback
		if err := cursor.Decode(&af); err != nil {
			log.Println("⚠️ skip malformed archived feedback:", err)
			continue
		}
		afs = append(afs, af)
	}

	return afs, cursor.Err()
}

// GetArchivedEnrichedByEvent เหมือน GetEnrichedByEvent แต่ฝั่ง archive
// ใช้ sentiment ที่ cache มากับ record (ไม่คำนวณซ้ำหลัง restore/archive)
// และเรียงตาม archivedAt ใหม่สุดก่อน
func GetArchivedEnrichedByEvent(eventID string) ([]models.EnrichedFeedback, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	afs, err := fetchArchivedByEvent(ctx, objID)
	if err != nil {
		return nil, err
	}

	userMap := users.ResolveMany(ctx, enrichment.ArchivedUserIDs(afs))
	return enrichment.BuildEnrichedArchived(afs, userMap), nil
}

// persistSentiments อัปเดต sentiment กลับลง store เฉพาะ record ที่ค่าเปลี่ยน
// ล้มเหลวแค่ log - ไม่ block ไม่ retry (งาน reclassify ใน jobs เป็นตัว retry)
func persistSentiments(enriched []models.EnrichedFeedback) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, e := range enriched {
		if e.Sentiment == e.Feedback.Sentiment {
			continue
		}
		_, err := feedbackCollection.UpdateOne(ctx,
			bson.M{"_id": e.Feedback.ID},
			bson.M{"$set": bson.M{"sentiment": e.Sentiment}},
		)
		if err != nil {
			log.Println("⚠️ sentiment write-through failed:", e.Feedback.ID.Hex(), err)
		}
	}
}

// ArchiveFeedback ย้าย feedback เดี่ยวไป partition archive ใน transaction เดียว
func ArchiveFeedback(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid feedback ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := database.GetClient().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var fb models.Feedback
		if err := feedbackCollection.FindOne(sc, bson.M{"_id": objID}).Decode(&fb); err != nil {
			return nil, err
		}

		archived := models.ArchivedFeedback{Feedback: fb, ArchivedAt: time.Now()}
		archived.Feedback.ID = primitive.NewObjectID()

		if _, err := archivedFeedbackCollection.InsertOne(sc, archived); err != nil {
			return nil, err
		}
		if _, err := feedbackCollection.DeleteOne(sc, bson.M{"_id": objID}); err != nil {
			return nil, err
		}
		return nil, nil
	})

	return err
}

// RestoreFeedback ย้ายกลับจาก archive - ได้ ID ใหม่, sentiment เดิมติดมาด้วย
func RestoreFeedback(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid feedback ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := database.GetClient().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var archived models.ArchivedFeedback
		if err := archivedFeedbackCollection.FindOne(sc, bson.M{"_id": objID}).Decode(&archived); err != nil {
			return nil, err
		}

		restored := archived.Feedback
		restored.ID = primitive.NewObjectID()
		now := time.Now()
		restored.RestoredAt = &now

		if _, err := feedbackCollection.InsertOne(sc, restored); err != nil {
			return nil, err
		}
		if _, err := archivedFeedbackCollection.DeleteOne(sc, bson.M{"_id": objID}); err != nil {
			return nil, err
		}
		return nil, nil
	})

	return err
}

// ReclassifyEvent จำแนก sentiment ใหม่ทั้ง event แล้ว persist ทุก record
// (idempotent - ใช้เป็นงาน retry ของ write-through cache)
func ReclassifyEvent(ctx context.Context, eventID primitive.ObjectID) (int, error) {
	fbs, err := fetchByEvent(ctx, feedbackCollection, eventID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, fb := range fbs {
		fresh := sentiment.Classify(fb.Comment)
		if fresh == fb.Sentiment {
			continue
		}
		_, err := feedbackCollection.UpdateOne(ctx,
			bson.M{"_id": fb.ID},
			bson.M{"$set": bson.M{"sentiment": fresh}},
		)
		if err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}
