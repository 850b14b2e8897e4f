package user

import (
	"net/http"
	"strings"
	"time"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RegisterReq 定义注册请求的结构体
type RegisterReq struct {
	StudentID string `json:"student_id" binding:"required"` // 学号，唯一标识用户
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	NickName  string `json:"nick_name"`
}

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// validatePasswordStrength 验证密码强度
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("密码长度必须至少8字符")
	}

	hasLetter := false
	hasDigit := false
	hasSpecial := false
	specialChars := "!@#$%^&*-"

	for _, char := range password {
		switch {
		case strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", char):
			hasLetter = true
		case strings.ContainsRune("0123456789", char):
			hasDigit = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasLetter {
		return errors.New("密码必须包含至少一个字母")
	}
	if !hasDigit {
		return errors.New("密码必须包含至少一个数字")
	}
	if !hasSpecial {
		return errors.New("密码必须包含至少一个特殊字符（!@#$%^&*-）")
	}

	return nil
}

// Register 处理用户注册请求
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 验证密码强度
	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("密码强度验证失败", "error", err, "student_id", req.StudentID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err).WithTips(err.Error()))
		return
	}

	// 检查学号是否已存在
	var existingUser model.User
	err := database.DB.Where("student_id = ?", req.StudentID).First(&existingUser).Error
	if err == nil {
		log.Warn("用户已存在", "student_id", req.StudentID)
		response.Fail(c, response.ErrAlreadyExists.WithTips("该学号已注册"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "student_id", req.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	nickName := req.NickName
	if nickName == "" {
		nickName = "用户" + req.StudentID
	}

	user := model.User{
		Model:     model.Model{ID: uuid.NewString()},
		StudentID: req.StudentID,
		Password:  tools.PasswordEncrypt(req.Password),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		NickName:  nickName,
		IsActive:  true,
		Role:      model.RoleStudent,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		// 唯一索引兜底并发重复注册
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("用户已存在", "student_id", req.StudentID)
			response.Fail(c, response.ErrAlreadyExists.WithTips("该学号已注册"))
			return
		}
		log.Error("创建用户失败", "error", err, "student_id", req.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功",
		"student_id", user.StudentID,
		"nick_name", user.NickName)

	response.Success(c)
}

// setAuthCookie 将访问令牌写入 Cookie
// 前后端跨域部署，因此 SameSite=None 且必须 Secure
func setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(jwt.CookieName, token, maxAge, "/", config.Get().Domain, true, true)
}

// Login 处理用户登录请求，成功后签发令牌并写入 Cookie
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	if err := database.DB.Where("student_id = ?", req.StudentID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分"用户不存在"与"密码错误"，避免探测已注册学号
			log.Warn("登录失败：用户不存在", "student_id", req.StudentID)
			response.Fail(c, response.ErrInvalidPassword)
			return
		}
		log.Error("数据库查询失败", "error", err, "student_id", req.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("登录失败：密码错误", "student_id", req.StudentID)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	if !user.IsActive {
		log.Warn("登录失败：账号已停用", "student_id", req.StudentID)
		response.Fail(c, response.ErrForbidden.WithTips("账号已停用"))
		return
	}

	token := jwt.CreateToken(jwt.Payload{
		StudentID: user.StudentID,
		Role:      user.Role,
	})
	setAuthCookie(c, token, int(config.Get().JWT.AccessExpire))

	log.Info("用户登录成功",
		"student_id", user.StudentID,
		"role", user.Role.String())

	response.Success(c, gin.H{
		"student_id": user.StudentID,
		"role":       user.Role,
	})
}

// Logout 处理登出请求：清除 Cookie 并拉黑当前令牌的 jti 直至其自然过期
func Logout(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	if payload.ExpiresAt != nil {
		if ttl := time.Until(payload.ExpiresAt.Time); ttl > 0 {
			if err := database.BlacklistToken(c.Request.Context(), payload.ID, ttl); err != nil {
				log.Error("拉黑令牌失败", "error", err, "jti", payload.ID)
				response.Fail(c, response.ErrInternal.WithOrigin(err))
				return
			}
		}
	}

	setAuthCookie(c, "", -1)

	log.Info("用户登出成功", "student_id", payload.StudentID)
	response.Success(c)
}

// Check 校验当前令牌，能走到这里说明中间件已放行
func Check(c *gin.Context) {
	response.Success(c)
}

// Home 返回当前登录用户的信息（不含密码）
func Home(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.Where("student_id = ?", payload.StudentID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("用户不存在", "student_id", payload.StudentID)
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		log.Error("数据库查询失败", "error", err, "student_id", payload.StudentID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !user.IsActive {
		log.Warn("账号已停用", "student_id", payload.StudentID)
		response.Fail(c, response.ErrForbidden.WithTips("账号已停用"))
		return
	}

	response.Success(c, user)
}
