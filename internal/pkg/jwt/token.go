package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/recab/recab/internal/pkg/models"
)

// TrackingClaims authorizes read access to one trip's track
type TrackingClaims struct {
	TripID string `json:"trip_id"`
	jwt.RegisteredClaims
}

// GenerateTrackingToken signs a share token for the given trip
func GenerateTrackingToken(tripID string, cfg *models.Config) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.Tracking.TokenTTL)

	claims := TrackingClaims{
		TripID: tripID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    cfg.App.Name,
			Subject:   tripID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Tracking.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateTrackingToken validates a share token and returns its claims
func ValidateTrackingToken(tokenString string, secret string) (*TrackingClaims, error) {
	claims := &TrackingClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.TripID == "" {
		return nil, fmt.Errorf("invalid tracking token")
	}

	return claims, nil
}
