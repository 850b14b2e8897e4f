package schedule

import "campus-activity-system/internal/model"

// CanCancel 判定操作者能否对某课程的时段停课：
// 干事与管理员对任意课程均可；学生仅可停自己创建的课程
func CanCancel(actorRole model.Role, actorStudentID, ownerStudentID string) bool {
	if actorRole >= model.RoleOfficer {
		return true
	}
	return actorStudentID != "" && actorStudentID == ownerStudentID
}
