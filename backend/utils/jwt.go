package utils

import (
	"errors"
	"portal/backend/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func GenerateJWTToken(studentID string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"student_id": studentID,
		"exp":        time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ExtractStudentIDFromToken(tokenString string, cfg *config.Config) (string, error) {
	if tokenString == "" {
		return "", errors.New("missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	studentID, ok := claims["student_id"].(string)
	if !ok {
		return "", errors.New("invalid student ID in token")
	}

	return studentID, nil
}
