package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/services/feedbacks"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleReclassifyFeedbackTask กวาด sentiment ของ feedback ทั้ง event ใหม่
// idempotent - รันซ้ำได้ ผลเท่าเดิม ใช้เป็นตัว retry ของ write-through cache
func HandleReclassifyFeedbackTask(ctx context.Context, t *asynq.Task) error {
	var payload ReclassifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	eventID, err := primitive.ObjectIDFromHex(payload.EventID)
	if err != nil {
		return err
	}

	// ✅ ตรวจสอบว่า event ยังมีอยู่ไหม (อาจโดน archive ไปแล้ว)
	var event bson.M
	err = database.EventCollection.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Event not found. Possibly archived. Skipping task:", payload.EventID)
			return nil // ✅ ไม่ถือว่า error
		}
		return err
	}

	updated, err := feedbacks.ReclassifyEvent(ctx, eventID)
	if err != nil {
		log.Println("❌ Reclassify sweep failed:", err)
		return err
	}

	log.Printf("✅ Reclassified feedback for event %s (%d updated)\n", payload.EventID, updated)
	return nil
}

// HandleBroadcastNotificationTask ประทับ sentAt หลังส่งประกาศ
// (ตัวส่งจริงอยู่นอก scope - ที่นี่ mark สถานะให้ console เห็นว่าออกไปแล้ว)
func HandleBroadcastNotificationTask(ctx context.Context, t *asynq.Task) error {
	var payload NotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(payload.NotificationID)
	if err != nil {
		return err
	}

	_, err = database.NotificationCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"sentAt": time.Now()}},
	)
	if err == nil {
		log.Println("✅ Notification broadcast:", payload.NotificationID)
	}

	return err
}

// StartWorker รัน asynq server - เรียกจาก main เป็น goroutine
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReclassifyFeedback, HandleReclassifyFeedbackTask)
	mux.HandleFunc(TypeBroadcastNotification, HandleBroadcastNotificationTask)

	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Asynq worker failed:", err)
	}
}
