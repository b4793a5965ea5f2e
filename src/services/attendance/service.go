package attendance

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var attendanceLogCollection *mongo.Collection

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	attendanceLogCollection = database.GetCollection("CampusEventsDB", "attendanceLogs")
	if attendanceLogCollection == nil {
		log.Fatal("Failed to get the attendanceLogs collection")
	}
}

// CreateAttendanceLog - บันทึกการเช็คชื่อ (ผล geofence มาจาก client)
func CreateAttendanceLog(entry *models.AttendanceLog) error {
	entry.ID = primitive.NewObjectID()
	if entry.CheckedInAt.Time.IsZero() {
		entry.CheckedInAt.Time = time.Now()
	}
	if entry.Status == "" {
		entry.Status = "validated"
	}
	_, err := attendanceLogCollection.InsertOne(context.Background(), entry)
	return err
}

// GetByEventID - ดึง log ของ event เรียงเวลาเช็คชื่อใหม่สุดก่อน
func GetByEventID(eventID string) ([]models.AttendanceLog, error) {
	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, errors.New("invalid event ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "checkedInAt", Value: -1}})

	cursor, err := attendanceLogCollection.Find(ctx, bson.M{"eventId": objID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.AttendanceLog
	for cursor.Next(ctx) {
		var entry models.AttendanceLog
		if err := cursor.Decode(&entry); err != nil {
			log.Println("⚠️ skip malformed attendance log:", err)
			continue
		}
		logs = append(logs, entry)
	}

	return logs, cursor.Err()
}

// DeleteAttendanceLog - ลบ log รายตัว
func DeleteAttendanceLog(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid attendance log ID")
	}

	_, err = attendanceLogCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	return err
}
