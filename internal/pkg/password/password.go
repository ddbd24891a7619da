package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// Hasher hashes and verifies user passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() Hasher {
	return &BcryptHasher{cost: DefaultCost}
}

// NewBcryptHasherWithCost is used by tests to keep hashing fast.
func NewBcryptHasherWithCost(cost int) Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func (h *BcryptHasher) Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
