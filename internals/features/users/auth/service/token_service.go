package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"pengajianku_backend/internals/configs"
)

const accessTokenTTL = 24 * time.Hour

// GenerateToken bikin access token HS256 dengan klaim id + role.
func GenerateToken(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
