package service

import (
	"errors"
	"time"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/MentorBridge/backend/internal/dto"
	"github.com/golang-jwt/jwt/v5"
)

// JWTService issues and verifies the signed bearer credential carrying
// {identity, email, role} with an expiration claim.
type JWTService struct {
	secretKey string
	expiry    time.Duration
}

func NewJWTService(secretKey string, expiry time.Duration) *JWTService {
	if expiry <= 0 {
		expiry = constants.DefaultTokenExpiryHours * time.Hour
	}
	return &JWTService{
		secretKey: secretKey,
		expiry:    expiry,
	}
}

// GenerateToken creates a signed token for the user.
func (s *JWTService) GenerateToken(userID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"role":  role,
		"exp":   now.Add(s.expiry).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken verifies signature, structure and expiry, and returns the
// identity the token encodes.
func (s *JWTService) ValidateToken(tokenString string) (*dto.TokenIdentity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	identity := &dto.TokenIdentity{}
	if id, ok := claims["id"].(string); ok {
		identity.ID = id
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}

	if identity.ID == "" {
		return nil, errors.New("token missing identity claim")
	}

	return identity, nil
}
