package jobs

import (
	"encoding/json"
	"log"

	"Backend-CampusEvents/src/database"

	"github.com/hibiken/asynq"
)

const TypeReclassifyFeedback = "feedback:reclassify"

type ReclassifyPayload struct {
	EventID string `json:"event_id"`
}

func NewReclassifyFeedbackTask(eventID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReclassifyPayload{EventID: eventID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReclassifyFeedback, payload), nil
}

const TypeBroadcastNotification = "notification:broadcast"

type NotificationPayload struct {
	NotificationID string `json:"notification_id"`
}

func NewBroadcastNotificationTask(notificationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(NotificationPayload{NotificationID: notificationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBroadcastNotification, payload), nil
}

// EnqueueReclassifyFeedback ยัดงานกวาด sentiment ของ event เข้าคิว
// ไม่มี Redis = ข้ามเงียบๆ (write-through ตอนอ่านยังทำงานปกติ)
func EnqueueReclassifyFeedback(eventID string) {
	if database.AsynqClient == nil {
		return
	}

	task, err := NewReclassifyFeedbackTask(eventID)
	if err != nil {
		log.Println("❌ Failed to build reclassify task:", err)
		return
	}

	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("❌ Failed to enqueue reclassify task:", err)
	}
}

// EnqueueBroadcastNotification ยัดงาน broadcast เข้าคิว
func EnqueueBroadcastNotification(notificationID string) error {
	if database.AsynqClient == nil {
		return nil
	}

	task, err := NewBroadcastNotificationTask(notificationID)
	if err != nil {
		return err
	}

	_, err = database.AsynqClient.Enqueue(task)
	return err
}
