package events

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var eventCollection *mongo.Collection
var validate = validator.New()

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	eventCollection = database.GetCollection("CampusEventsDB", "events")
	if eventCollection == nil {
		log.Fatal("Failed to get the events collection")
	}
}

// CreateEvent - สร้าง event ใหม่
func CreateEvent(event *models.Event) error {
	if err := validate.Struct(event); err != nil {
		return err
	}

	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	_, err := eventCollection.InsertOne(context.Background(), event)
	return err
}

// GetAllEvents - ดึง event ทั้งหมดแบบแบ่งหน้า ค้นหาจากชื่อได้
func GetAllEvents(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := eventCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.SortOrder())

	cursor, err := eventCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	for cursor.Next(ctx) {
		var event models.Event
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return models.NewPaginatedResponse(events, total, params), nil
}

// GetEventByID - ดึง event ตาม ID
func GetEventByID(id string) (*models.Event, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	var event models.Event
	err = eventCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&event)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// UpdateEvent - อัปเดต event
func UpdateEvent(id string, event *models.Event) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid event ID")
	}

	if err := validate.Struct(event); err != nil {
		return err
	}

	filter := bson.M{"_id": objID}
	update := bson.M{"$set": event.EventDetails}

	_, err = eventCollection.UpdateOne(context.Background(), filter, update)
	return err
}

// DeleteEvent - ลบ event (เฉพาะตัว event - archive ใช้ ArchiveEvent)
func DeleteEvent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid event ID")
	}

	_, err = eventCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	return err
}

// SetCurrentEvent ตั้ง event เดียวเป็น current - จุดเขียนเดียวของ selection context
// เคลียร์ flag ทุกตัวแล้วตั้งตัวใหม่ใน transaction เดียว
func SetCurrentEvent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid event ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := database.GetClient().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := eventCollection.UpdateMany(sc,
			bson.M{"isCurrent": true},
			bson.M{"$set": bson.M{"isCurrent": false}},
		); err != nil {
			return nil, err
		}

		res, err := eventCollection.UpdateOne(sc,
			bson.M{"_id": objID},
			bson.M{"$set": bson.M{"isCurrent": true}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		return nil, nil
	})

	return err
}

// GetCurrentEvent จุดอ่านเดียวของ current event - ไม่มี state แฝงข้ามหน้า
func GetCurrentEvent() (*models.Event, error) {
	var event models.Event
	err := eventCollection.FindOne(context.Background(), bson.M{"isCurrent": true}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
