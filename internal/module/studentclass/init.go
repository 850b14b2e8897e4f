package studentclass

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleStudentClass struct{}

func (m *ModuleStudentClass) GetName() string {
	return "StudentClass"
}

func (m *ModuleStudentClass) Init() {
	log = logger.New("StudentClass")
}
