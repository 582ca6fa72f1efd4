package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"patient-manager-api/config"
	"patient-manager-api/internal/application/ports"
	"patient-manager-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

// AuthService issues bearer tokens for the configured API client. The
// client secret is stored bcrypt-hashed in the environment.
type AuthService struct {
	jwtService *jwt.Service
	client     config.AuthClient
}

func NewAuthService(jwtService *jwt.Service, client config.AuthClient) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
		client:     client,
	}
}

func (as *AuthService) IssueToken(clientID, clientSecret string) (string, error) {
	if clientID != as.client.ID {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(as.client.SecretHash), []byte(clientSecret)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(clientID, time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
