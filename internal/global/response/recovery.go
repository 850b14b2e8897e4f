package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// Recovery 捕获 handler 中的 panic，转换为统一的 500 响应
// 必须通过 defer 调用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		var err error
		switch v := r.(type) {
		case error:
			err = v
		default:
			err = fmt.Errorf("%v", v)
		}
		Fail(c, ErrInternal.WithOrigin(pkgerrors.WithStack(err)))
		c.Abort()
	}
}
