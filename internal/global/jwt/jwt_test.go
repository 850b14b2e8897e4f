package jwt

import (
	"testing"

	"campus-activity-system/config"
	"campus-activity-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.Init()
	m.Run()
}

func TestCreateAndParseToken(t *testing.T) {
	token := CreateToken(Payload{StudentID: "202301001", Role: model.RoleOfficer})
	require.NotEmpty(t, token)

	claims, valid := ParseToken(token)
	require.True(t, valid)
	assert.Equal(t, "202301001", claims.StudentID)
	assert.Equal(t, model.RoleOfficer, claims.Role)
	assert.Equal(t, "202301001", claims.Subject)
	// jti 用于登出拉黑，必须存在
	assert.NotEmpty(t, claims.ID)
}

func TestParseToken_Tampered(t *testing.T) {
	token := CreateToken(Payload{StudentID: "202301001", Role: model.RoleStudent})

	_, valid := ParseToken(token + "x")
	assert.False(t, valid)

	_, valid = ParseToken("not-a-token")
	assert.False(t, valid)
}

func TestParseToken_UniqueJTI(t *testing.T) {
	a, _ := ParseToken(CreateToken(Payload{StudentID: "s1"}))
	b, _ := ParseToken(CreateToken(Payload{StudentID: "s1"}))
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, a.ID, b.ID)
}
