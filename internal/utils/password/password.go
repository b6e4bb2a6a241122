package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/orcahelper/orcahelper/internal/logger"
)

// Hash returns a salted bcrypt hash of plain. Two calls with the same
// input produce different hashes; both verify.
func Hash(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. A malformed hash is treated
// as a mismatch, never as an error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
