package services

import (
	"context"
	"errors"
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

var notificationCollection *mongo.Collection
var notificationValidate = validator.New()

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	notificationCollection = database.GetCollection("CampusEventsDB", "notifications")
	if notificationCollection == nil {
		log.Fatal("Failed to get the notifications collection")
	}
}

// CreateNotification - บันทึกประกาศแล้วส่งงาน broadcast เข้าคิว
func CreateNotification(notification *models.Notification) error {
	if err := notificationValidate.Struct(notification); err != nil {
		return err
	}

	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now()
	if notification.Audience == "" {
		notification.Audience = "all"
	}

	_, err := notificationCollection.InsertOne(context.Background(), notification)
	if err != nil {
		return err
	}

	if err := jobs.EnqueueBroadcastNotification(notification.ID.Hex()); err != nil {
		// ตัวประกาศถูกบันทึกแล้ว - ส่งไม่ออกแค่ log ไว้
		log.Println("⚠️ Failed to enqueue notification broadcast:", err)
	}

	return nil
}

// GetAllNotifications - ดึงประกาศทั้งหมด ใหม่สุดก่อน
func GetAllNotifications() ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := notificationCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// DeleteNotification - ลบประกาศ
func DeleteNotification(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid notification ID")
	}

	_, err = notificationCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	return err
}
