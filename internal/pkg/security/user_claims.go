package security

import (
	"github.com/golang-jwt/jwt/v5"
)

const JWTSecret string = "ReviewArena"

// UserClaims Token 中携带的业务信息，签发由外部账号系统负责
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}
