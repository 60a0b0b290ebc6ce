package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the given plaintext password with bcrypt. The salt is
// embedded in the returned hash, so equal inputs produce distinct outputs.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// Malformed hashes fail closed: the answer is false, never a panic.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
