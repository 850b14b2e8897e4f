package jwt

import (
	"time"

	"campus-activity-system/config"
	"campus-activity-system/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName 携带访问令牌的 Cookie 名称
const CookieName = "access_token"

// Payload 写入令牌的业务字段
type Payload struct {
	StudentID string     `json:"student_id"`
	Role      model.Role `json:"role"`
}

type Claims struct {
	Payload
	jwt.RegisteredClaims
}

// CreateToken 生成 HS256 签名的访问令牌
// jti 用于登出后在 Redis 中拉黑该令牌
func CreateToken(payload Payload) string {
	cfg := config.Get()
	now := time.Now()
	claims := Claims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   payload.StudentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.AccessExpire) * time.Second)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.AccessSecret))
	if err != nil {
		// 密钥为固定配置，签名失败属于不可恢复错误
		panic(err)
	}
	return signed
}

// ParseToken 解析并校验访问令牌，包括签名与过期时间
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
