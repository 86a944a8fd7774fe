package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPin stores the 4-digit kiosk PIN as a bcrypt hash. The legacy system
// kept PINs in clear text; hashed storage replaces that on purpose.
func HashPin(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPin(hash string, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
