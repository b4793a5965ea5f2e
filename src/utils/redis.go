package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	DB "Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/models"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// InitRedis delegates initialization to database.InitRedis so there is a single
// place responsible for creating and pinging the Redis client.
func InitRedis() {
	DB.InitRedis()
}

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Set(Ctx, key, refreshToken, expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken ตรวจสอบว่า refresh token ตรงกับที่เก็บไว้ใน Redis หรือไม่
// Returns true if Redis is not available (development mode - skip validation)
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้ามการตรวจสอบ (อนุญาตให้ผ่าน)
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Token ไม่มีใน Redis
		}
		return false, fmt.Errorf("failed to get refresh token: %v", err)
	}

	return storedToken == refreshToken, nil
}

// DeleteRefreshToken ลบ refresh token จาก Redis (ใช้ตอน logout)
func DeleteRefreshToken(userID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	err := client.Del(Ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	return nil
}

// CacheSentimentCounts เก็บยอดนับ sentiment ของ event ไว้ให้ dashboard อ่านเร็ว
// cache เป็น derived state - พลาดได้ ไม่กระทบความถูกต้อง
func CacheSentimentCounts(eventID string, counts models.SentimentCounts) {
	client := ensureClient()
	if client == nil {
		return
	}

	payload, err := json.Marshal(counts)
	if err != nil {
		return
	}

	key := fmt.Sprintf("sentiment:counts:%s", eventID)
	if err := client.Set(Ctx, key, payload, 10*time.Minute).Err(); err != nil {
		fmt.Println("⚠️ failed to cache sentiment counts:", err)
	}
}

// GetCachedSentimentCounts อ่านยอดนับจาก cache - (zero, false) เมื่อไม่มี
func GetCachedSentimentCounts(eventID string) (models.SentimentCounts, bool) {
	var counts models.SentimentCounts

	client := ensureClient()
	if client == nil {
		return counts, false
	}

	key := fmt.Sprintf("sentiment:counts:%s", eventID)
	payload, err := client.Get(Ctx, key).Result()
	if err != nil {
		return counts, false
	}

	if err := json.Unmarshal([]byte(payload), &counts); err != nil {
		return counts, false
	}
	return counts, true
}

// InvalidateSentimentCounts ลบ cache หลัง archive/restore
func InvalidateSentimentCounts(eventID string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, fmt.Sprintf("sentiment:counts:%s", eventID))
}
