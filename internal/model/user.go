package model

// Role 用户角色，封闭枚举，权限从低到高
type Role int

const (
	RoleStudent Role = iota
	RoleOfficer
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleStudent: "student",
	RoleOfficer: "officer",
	RoleAdmin:   "admin",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Valid 判断角色是否在封闭集合内
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

type User struct {
	Model
	StudentID string `gorm:"type:varchar(20);uniqueIndex;not null" json:"student_id"` // 学号，唯一标识用户
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	FirstName string `gorm:"type:varchar(64)" json:"first_name"`
	LastName  string `gorm:"type:varchar(64)" json:"last_name"`
	NickName  string `gorm:"type:varchar(64)" json:"nick_name"`
	IsActive  bool   `gorm:"default:true;not null" json:"is_active"`
	Role      Role   `gorm:"default:0;not null" json:"role"`
}
