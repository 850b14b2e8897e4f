package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role(99).Valid())

	assert.Equal(t, "officer", RoleOfficer.String())
	assert.Equal(t, "unknown", Role(99).String())
}

func TestActivityEnums(t *testing.T) {
	assert.True(t, StatusUpcoming.Valid())
	assert.False(t, ActivityStatus("deleted").Valid())

	assert.True(t, CategoryAcademics.Valid())
	assert.False(t, ActivityCategory("sports").Valid())
}
