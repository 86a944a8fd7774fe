package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AccessClaims struct {
	EmployeeID string `json:"employeeId"`
	Staff      bool   `json:"staff,omitempty"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(userID string, employeeID string, staff bool, secret string, minutes int) (string, error) {
	expiration := time.Now().Add(time.Duration(minutes) * time.Minute)
	claims := AccessClaims{
		EmployeeID: employeeID,
		Staff:      staff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
