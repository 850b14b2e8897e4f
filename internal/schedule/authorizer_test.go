package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-activity-system/internal/model"
)

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		role    model.Role
		actorID string
		ownerID string
		want    bool
	}{
		{"学生停自己的课程", model.RoleStudent, "202301001", "202301001", true},
		{"学生停他人的课程", model.RoleStudent, "202301001", "202301002", false},
		{"干事停任意课程", model.RoleOfficer, "202301001", "202301002", true},
		{"管理员停任意课程", model.RoleAdmin, "202301001", "202301002", true},
		{"学号为空的学生", model.RoleStudent, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCancel(tt.role, tt.actorID, tt.ownerID))
		})
	}
}
