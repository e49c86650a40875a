package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("secret hashing failed")
	ErrComparisonFailed = errors.New("secret comparison failed")
	ErrInvalidSecret    = errors.New("invalid secret")
)

const DefaultCost = bcrypt.DefaultCost

func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", ErrInvalidSecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func CompareSecret(hashedSecret, secret string) error {
	if hashedSecret == "" || secret == "" {
		return ErrInvalidSecret
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedSecret), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
