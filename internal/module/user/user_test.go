package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"合法密码", "Passw0rd!", false},
		{"过短", "P0d!", true},
		{"缺少数字", "Password!", true},
		{"缺少字母", "12345678!", true},
		{"缺少特殊字符", "Password1", true},
		{"空密码", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
