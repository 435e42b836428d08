package utils

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashOtpCode hashes a one-time code before it is stored, so a leaked cache
// dump cannot be replayed.
func HashOtpCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), 10)
	return string(bytes), err
}

func CompareOtpCode(hashedCode string, plainCode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(plainCode))
}

// GenerateOtpCode returns a numeric code drawn from crypto/rand.
func GenerateOtpCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid OTP length")
	}

	const digits = "0123456789"
	otp := make([]byte, length)
	for i := range otp {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		otp[i] = digits[n.Int64()]
	}
	return string(otp), nil
}
