package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/models"
	"github.com/12Danish/NextRepBackend-sub000/utils"

	"gorm.io/gorm"
)

func RegisterUser(username, email, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Password:     hashedPassword,
		AuthProvider: models.AuthProviderLocal,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if user.AuthProvider != models.AuthProviderLocal || !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// AuthenticateFirebaseUser exchanges a verified Google/Firebase ID token
// for a first-party JWT, creating the account on first sign-in.
func AuthenticateFirebaseUser(ctx context.Context, idToken string) (string, error) {
	email, name, err := utils.VerifyFirebaseToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	var user models.User
	err = config.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		user = models.User{
			Username:     name,
			Email:        strings.ToLower(email),
			AuthProvider: models.AuthProviderFirebase,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func StartPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		// no account: caller still answers 200 so addresses can't be probed
		return ErrNotFound
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

func CompletePasswordReset(token, newPassword string) error {
	var user models.User
	result := config.DB.Where("reset_token = ? AND reset_token <> ''", token).First(&user)
	if result.Error != nil || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
