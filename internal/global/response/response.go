package response

import (
	"net/http"

	"campus-activity-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体结构
type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Origin string `json:"origin,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// 业务错误码定义，与 HTTP 状态码对应（见 httpStatus）
var (
	ErrInvalidRequest  = newError(400, "请求参数错误")
	ErrUnauthorized    = newError(401, "未登录或登录已过期")
	ErrTokenInvalid    = newError(4010, "登录凭证无效")
	ErrInvalidPassword = newError(4012, "用户名或密码错误")
	ErrForbidden       = newError(403, "没有操作权限")
	ErrNotFound        = newError(404, "资源不存在")
	ErrAlreadyExists   = newError(409, "资源已存在")
	ErrDatabase        = newError(500, "数据库错误")
	ErrStorage         = newError(5001, "对象存储错误")
	ErrInternal        = newError(5002, "服务器内部错误")
)

// httpStatus 将业务错误码映射为 HTTP 状态码
func httpStatus(code int32) int {
	switch {
	case code == 200:
		return http.StatusOK
	case code >= 100 && code <= 599:
		return int(code)
	case code >= 4010 && code < 4020:
		return http.StatusUnauthorized
	case code >= 5000:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Success 返回成功响应，data 最多传一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，err 必须是本包定义的 *Error（或由其派生）
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrInternal.WithOrigin(err)
	}
	body := ResponseBody{
		Code:   e.Code,
		Msg:    e.Message,
		Origin: e.Origin,
	}
	c.Set(ErrorContextKey, e)
	c.Set(ResponseContextKey, body)

	// 服务器内部错误上报 Sentry，业务错误由 shouldReport 过滤
	sentry.CaptureException(c, e)

	c.JSON(httpStatus(e.Code), body)
}
