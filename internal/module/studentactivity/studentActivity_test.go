package studentactivity

import (
	"testing"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/test"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Init()
	m.Run()
}

func TestJoinActivity_Unauthenticated(t *testing.T) {
	resp := test.DoRequest(t, JoinActivity, JoinReq{ActivityID: "a-1"})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}
