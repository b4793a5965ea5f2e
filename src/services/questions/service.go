package questions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/jobs"
	"Backend-CampusEvents/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var questionsCollection *mongo.Collection
var validate = validator.New()

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	questionsCollection = database.GetCollection("CampusEventsDB", "event_questions")
	if questionsCollection == nil {
		log.Fatal("Failed to get the event_questions collection")
	}
}

// GetByEventID - ดึงชุดคำถามของ event (ไม่มี = ชุดว่าง ไม่ใช่ error)
func GetByEventID(eventID string) (*models.EventQuestions, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	var q models.EventQuestions
	err = questionsCollection.FindOne(context.Background(), bson.M{"eventId": objID}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return &models.EventQuestions{
			EventID:   objID,
			Questions: []string{},
			OpenEnded: []string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &q, nil
}

// Upsert บันทึกชุดคำถาม - เกิน 10 ข้อถูกปัดตกก่อนลง store เสมอ
// แก้ชุดคำถามแล้ว enqueue งาน reclassify เพื่อ refresh sentiment cache ของ event
func Upsert(eventID string, q *models.EventQuestions) error {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return errors.New("invalid event ID")
	}

	if len(q.Questions) > models.MaxRatedQuestions {
		return fmt.Errorf("rated questions limited to %d", models.MaxRatedQuestions)
	}
	if err := validate.Struct(q); err != nil {
		return err
	}

	q.EventID = objID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = questionsCollection.UpdateOne(ctx,
		bson.M{"eventId": objID},
		bson.M{"$set": bson.M{
			"eventId":   q.EventID,
			"questions": q.Questions,
			"openEnded": q.OpenEnded,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	// cached sentiment อาจ stale - ให้ worker กวาดใหม่เบื้องหลัง
	jobs.EnqueueReclassifyFeedback(eventID)
	return nil
}

// DeleteByEventID - ลบชุดคำถามของ event
func DeleteByEventID(eventID string) error {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return errors.New("invalid event ID")
	}

	_, err = questionsCollection.DeleteOne(context.Background(), bson.M{"eventId": objID})
	return err
}
