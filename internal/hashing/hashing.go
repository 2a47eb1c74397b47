// Package hashing abstracts password hashing so services never depend on a
// concrete algorithm. Production uses bcrypt; tests substitute a fake.
package hashing

import "golang.org/x/crypto/bcrypt"

// Hasher hashes secrets and compares plaintext against stored hashes.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

// BcryptHasher implements Hasher with golang.org/x/crypto/bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

func (h *BcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
