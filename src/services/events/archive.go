package events

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ArchiveEvent ย้าย event พร้อม dependents ทั้งหมดเข้า archive ใน transaction
// เดียว - fan-out ล้มเหลวกลางทางต้อง rollback ทั้งก้อน ไม่ทิ้ง state ครึ่งๆ กลางๆ
func ArchiveEvent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid event ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session, err := database.GetClient().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var event models.Event
		if err := eventCollection.FindOne(sc, bson.M{"_id": objID}).Decode(&event); err != nil {
			return nil, err
		}

		// STEP 1 - โหลดชุดคำถาม (อาจไม่มี)
		var questions *models.EventQuestions
		var q models.EventQuestions
		err := database.EventQuestionsCollection.FindOne(sc, bson.M{"eventId": objID}).Decode(&q)
		switch err {
		case nil:
			questions = &q
		case mongo.ErrNoDocuments:
		default:
			return nil, err
		}

		// STEP 2 - โหลด feedbacks
		fbs, err := findFeedbacks(sc, objID)
		if err != nil {
			return nil, err
		}

		// STEP 3 - โหลด attendance logs
		logs, err := findAttendanceLogs(sc, objID)
		if err != nil {
			return nil, err
		}

		// STEP 4 - เขียน bundle เอกสารเดียว
		bundle := models.BuildArchiveBundle(event, questions, fbs, logs, time.Now())
		if _, err := database.ArchivedEventCollection.InsertOne(sc, bundle); err != nil {
			return nil, err
		}

		// STEP 5 - ลบต้นฉบับทั้งหมด (อยู่ใน transaction เดียวกับ STEP 4)
		if _, err := eventCollection.DeleteOne(sc, bson.M{"_id": objID}); err != nil {
			return nil, err
		}
		if questions != nil {
			if _, err := database.EventQuestionsCollection.DeleteOne(sc, bson.M{"eventId": objID}); err != nil {
				return nil, err
			}
		}
		if _, err := database.FeedbackCollection.DeleteMany(sc, bson.M{"eventId": objID}); err != nil {
			return nil, err
		}
		if _, err := database.AttendanceLogCollection.DeleteMany(sc, bson.M{"eventId": objID}); err != nil {
			return nil, err
		}

		return nil, nil
	})

	if err != nil {
		return err
	}

	utils.InvalidateSentimentCounts(id)
	log.Println("✅ Event archived:", id)
	return nil
}

// RestoreEvent แตก bundle กลับเป็น event + dependents (ID ใหม่ทั้งชุด)
// แล้วลบ bundle - transaction เดียวเช่นกัน
func RestoreEvent(archivedID string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(archivedID)
	if err != nil {
		return "", errors.New("invalid archived event ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session, err := database.GetClient().StartSession()
	if err != nil {
		return "", err
	}
	defer session.EndSession(ctx)

	newID := primitive.NewObjectID()

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var bundle models.ArchivedEvent
		if err := database.ArchivedEventCollection.FindOne(sc, bson.M{"_id": objID}).Decode(&bundle); err != nil {
			return nil, err
		}

		event, questions, fbs, logs := models.ExplodeBundle(bundle, newID, time.Now())

		if _, err := eventCollection.InsertOne(sc, event); err != nil {
			return nil, err
		}
		if questions != nil {
			if _, err := database.EventQuestionsCollection.InsertOne(sc, questions); err != nil {
				return nil, err
			}
		}
		for _, fb := range fbs {
			if _, err := database.FeedbackCollection.InsertOne(sc, fb); err != nil {
				return nil, err
			}
		}
		for _, l := range logs {
			if _, err := database.AttendanceLogCollection.InsertOne(sc, l); err != nil {
				return nil, err
			}
		}

		if _, err := database.ArchivedEventCollection.DeleteOne(sc, bson.M{"_id": objID}); err != nil {
			return nil, err
		}
		return nil, nil
	})

	if err != nil {
		return "", err
	}

	log.Println("✅ Event restored:", archivedID, "→", newID.Hex())
	return newID.Hex(), nil
}

// GetAllArchivedEvents - ดึง bundle ทั้งหมด เรียง archivedAt ใหม่สุดก่อน
func GetAllArchivedEvents() ([]models.ArchivedEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ArchivedEventCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var archived []models.ArchivedEvent
	for cursor.Next(ctx) {
		var bundle models.ArchivedEvent
		if err := cursor.Decode(&bundle); err != nil {
			log.Println("⚠️ skip malformed archive bundle:", err)
			continue
		}
		archived = append(archived, bundle)
	}

	return archived, cursor.Err()
}

// DeleteArchivedEvent - ลบ bundle ถาวร
func DeleteArchivedEvent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid archived event ID")
	}

	_, err = database.ArchivedEventCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	return err
}

func findFeedbacks(ctx context.Context, eventID primitive.ObjectID) ([]models.Feedback, error) {
	cursor, err := database.FeedbackCollection.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fbs []models.Feedback
	if err := cursor.All(ctx, &fbs); err != nil {
		return nil, err
	}
	return fbs, nil
}

func findAttendanceLogs(ctx context.Context, eventID primitive.ObjectID) ([]models.AttendanceLog, error) {
	cursor, err := database.AttendanceLogCollection.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.AttendanceLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
