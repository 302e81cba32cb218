package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash (cost 10).
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether plain matches the stored hash. bcrypt does the
// salted, constant-time comparison; never compare hashes with ==.
func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
