package studentclass

import (
	"testing"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Init()
	m.Run()
}

func TestValidateMeeting(t *testing.T) {
	tests := []struct {
		name    string
		meeting MeetingReq
		wantErr bool
	}{
		{"合法时段", MeetingReq{Weekday: 1, StartTime: "09:00:00", EndTime: "10:30:00"}, false},
		{"周日合法", MeetingReq{Weekday: 0, StartTime: "09:00:00", EndTime: "10:30:00"}, false},
		{"星期越界", MeetingReq{Weekday: 7, StartTime: "09:00:00", EndTime: "10:30:00"}, true},
		{"星期为负", MeetingReq{Weekday: -1, StartTime: "09:00:00", EndTime: "10:30:00"}, true},
		{"结束早于开始", MeetingReq{Weekday: 1, StartTime: "10:30:00", EndTime: "09:00:00"}, true},
		{"开始结束相同", MeetingReq{Weekday: 1, StartTime: "09:00:00", EndTime: "09:00:00"}, true},
		{"时间格式错误", MeetingReq{Weekday: 1, StartTime: "9:00", EndTime: "10:30:00"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMeeting(tt.meeting)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancelMeeting_Unauthenticated(t *testing.T) {
	// 未经认证中间件注入 payload，直接调用应返回未登录
	resp := test.DoRequest(t, CancelMeeting, CancelReq{
		ClassMeetingID:   "m-1",
		CancellationDate: "2024-02-05",
	})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}
