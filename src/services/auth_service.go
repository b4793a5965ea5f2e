package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-CampusEvents/src/database"
	"Backend-CampusEvents/src/models"
	"Backend-CampusEvents/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser ตรวจ email+password ของเจ้าหน้าที่ console
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()
	userCollection := database.GetCollection("CampusEventsDB", "users")

	var dbUser models.User
	err := userCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid password")
	}

	result := &models.User{
		ID:          dbUser.ID,
		Email:       dbUser.Email,
		Role:        dbUser.Role,
		DisplayName: dbUser.DisplayName,
		FirstName:   dbUser.FirstName,
		Surname:     dbUser.Surname,
	}

	return result, nil
}

// IssueTokens ออก access token + refresh token (refresh เก็บใน Redis)
func IssueTokens(user *models.User) (accessToken, refreshToken string, err error) {
	accessToken, err = utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return "", "", err
	}

	refreshToken = uuid.NewString()
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, 7*24*time.Hour); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// RefreshAccessToken แลก refresh token เป็น access token ใหม่
func RefreshAccessToken(userID, refreshToken string) (string, error) {
	ok, err := utils.ValidateRefreshToken(userID, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("invalid refresh token")
	}

	userCollection := database.GetCollection("CampusEventsDB", "users")

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", errors.New("invalid user ID")
	}

	var user models.User
	if err := userCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user); err != nil {
		return "", errors.New("user not found")
	}

	return utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
}

// Logout ตัด refresh token ทิ้ง
func Logout(userID string) error {
	return utils.DeleteRefreshToken(userID)
}
