package utils

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var firebaseAuth *auth.Client

func InitFirebase() error {
	credFile := os.Getenv("FIREBASE_CREDENTIALS")
	if credFile == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS not set")
	}

	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(credFile))
	if err != nil {
		return fmt.Errorf("failed to init firebase app: %w", err)
	}

	firebaseAuth, err = app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to init firebase auth client: %w", err)
	}
	return nil
}

// VerifyFirebaseToken validates a Google/Firebase ID token and returns
// the email and display name claims.
func VerifyFirebaseToken(ctx context.Context, idToken string) (email, name string, err error) {
	if firebaseAuth == nil {
		return "", "", fmt.Errorf("firebase auth not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid firebase token: %w", err)
	}

	email, _ = token.Claims["email"].(string)
	name, _ = token.Claims["name"].(string)
	if email == "" {
		return "", "", fmt.Errorf("firebase token has no email claim")
	}
	return email, name, nil
}
