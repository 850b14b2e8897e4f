package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordEncryptAndCompare(t *testing.T) {
	hash := PasswordEncrypt("Passw0rd!")

	assert.NotEqual(t, "Passw0rd!", hash)
	assert.True(t, PasswordCompare("Passw0rd!", hash))
	assert.False(t, PasswordCompare("wrong", hash))
}

func TestPasswordEncrypt_SaltedPerCall(t *testing.T) {
	// bcrypt 每次加盐，同一明文的哈希互不相同
	assert.NotEqual(t, PasswordEncrypt("Passw0rd!"), PasswordEncrypt("Passw0rd!"))
}
