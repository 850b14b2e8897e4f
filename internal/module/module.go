package module

import (
	"campus-activity-system/internal/module/activity"
	"campus-activity-system/internal/module/calendar"
	"campus-activity-system/internal/module/ping"
	"campus-activity-system/internal/module/studentactivity"
	"campus-activity-system/internal/module/studentclass"
	"campus-activity-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&activity.ModuleActivity{},
		&studentactivity.ModuleStudentActivity{},
		&studentclass.ModuleStudentClass{},
		&calendar.ModuleCalendar{},
	})
}
