package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword runs the plaintext through bcrypt at the given cost and
// returns the encoded hash.
func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks a plaintext candidate against a stored hash,
// returning bcrypt's mismatch error when they differ.
func ComparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
