package studentactivity

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleStudentActivity struct{}

func (m *ModuleStudentActivity) GetName() string {
	return "StudentActivity"
}

func (m *ModuleStudentActivity) Init() {
	log = logger.New("StudentActivity")
}
