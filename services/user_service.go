package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/models"
	"github.com/12Danish/NextRepBackend-sub000/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileInput struct {
	Username       string  `json:"username"`
	Dob            string  `json:"dob"` // YYYY-MM-DD
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func UpdateUserProfile(userID uuid.UUID, input ProfileInput) (*models.User, error) {
	user, err := GetUserProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Dob != "" {
		if dob, err := time.Parse("2006-01-02", input.Dob); err == nil {
			user.Dob = dob
		}
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.ID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUser(userID uuid.UUID) error {
	user, err := GetUserProfile(userID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.Tracker{}, &models.DietEntry{}, &models.WorkoutEntry{},
			&models.SleepEntry{}, &models.Goal{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(user).Error
	})
}
