package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	EventCollection            *mongo.Collection
	FeedbackCollection         *mongo.Collection
	EventQuestionsCollection   *mongo.Collection
	AttendanceLogCollection    *mongo.Collection
	ArchivedEventCollection    *mongo.Collection
	ArchivedFeedbackCollection *mongo.Collection
	UserCollection             *mongo.Collection
	NotificationCollection     *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		EventCollection = GetCollection("CampusEventsDB", "events")
		FeedbackCollection = GetCollection("CampusEventsDB", "feedbacks")
		EventQuestionsCollection = GetCollection("CampusEventsDB", "event_questions")
		AttendanceLogCollection = GetCollection("CampusEventsDB", "attendanceLogs")
		ArchivedEventCollection = GetCollection("CampusEventsDB", "archived_events")
		ArchivedFeedbackCollection = GetCollection("CampusEventsDB", "archived_feedbacks")
		UserCollection = GetCollection("CampusEventsDB", "users")
		NotificationCollection = GetCollection("CampusEventsDB", "notifications")
	})

	return connectErr
}

// GetClient คืน client สำหรับเปิด session / transaction
func GetClient() *mongo.Client {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client
}

// ListDatabases แสดงรายการ Database ทั้งหมด
func ListDatabases() {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}

	dbs, err := client.ListDatabaseNames(context.TODO(), bson.M{})
	if err != nil {
		log.Fatal("❌ Error listing databases:", err)
	}

	fmt.Println("📌 Databases in MongoDB:")
	for _, db := range dbs {
		fmt.Println(" -", db)
	}
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
