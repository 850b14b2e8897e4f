package calendar

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleCalendar struct{}

func (m *ModuleCalendar) GetName() string {
	return "Calendar"
}

func (m *ModuleCalendar) Init() {
	log = logger.New("Calendar")
}
