package hash

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used on every save path.
const DefaultCost = 10

func HashPassword(password string, cost int) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hashbytes), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
