package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned when password and pepper exceed what bcrypt reads.
var ErrPasswordTooLong = errors.New("password too long")

const bcryptMaxInput = 72

type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hash. An empty hash still costs one
	// comparison so that unknown users take as long as known ones.
	Verify(hash, plain string) bool
}

// BcryptHasher salts with bcrypt and appends a server-side pepper to every password.
type BcryptHasher struct {
	cost   int
	pepper string
	dummy  []byte
}

func NewBcryptHasher(cost int, pepper string) (*BcryptHasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, err
	}
	return &BcryptHasher{cost: cost, pepper: pepper, dummy: dummy}, nil
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	peppered := []byte(plain + h.pepper)
	if len(peppered) > bcryptMaxInput {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword(peppered, h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(hash, plain string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain+h.pepper))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain+h.pepper)) == nil
}
