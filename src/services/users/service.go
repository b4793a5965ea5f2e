package users

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var userCollection *mongo.Collection

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	userCollection = database.GetCollection("CampusEventsDB", "users")
	if userCollection == nil {
		log.Fatal("Failed to get the users collection")
	}
}

// GetUserByID - ดึงข้อมูลผู้ใช้ตาม ID
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = userCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetAllUsers - ดึงข้อมูลผู้ใช้ทั้งหมด
func GetAllUsers() ([]models.User, error) {
	var users []models.User
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := userCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// Resolve แปลง User เป็นข้อมูลแสดงผล: displayName หรือ firstName+surname,
// idNumber หรือ studentID
func Resolve(user *models.User) models.ResolvedUser {
	name := user.DisplayName
	if name == "" {
		name = strings.TrimSpace(user.FirstName + " " + user.Surname)
	}
	idNumber := user.IDNumber
	if idNumber == "" {
		idNumber = user.StudentID
	}
	return models.ResolvedUser{DisplayName: name, IDNumber: idNumber}
}

// ResolveMany ดึงข้อมูลผู้ใช้หลายคนพร้อมกัน (หนึ่ง lookup ต่อ user, ไม่ serial)
// user ที่หาไม่เจอถูกข้าม - batch ไม่ล้มเพราะ resolve รายตัวพลาด
func ResolveMany(ctx context.Context, ids []primitive.ObjectID) map[string]models.ResolvedUser {
	userMap := make(map[string]models.ResolvedUser, len(ids))
	if len(ids) == 0 {
		return userMap
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, id := range ids {
		wg.Add(1)
		go func(id primitive.ObjectID) {
			defer wg.Done()

			var user models.User
			err := userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
			if err != nil {
				if err != mongo.ErrNoDocuments {
					log.Println("⚠️ user lookup failed:", id.Hex(), err)
				}
				return
			}

			mu.Lock()
			userMap[id.Hex()] = Resolve(&user)
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	return userMap
}
