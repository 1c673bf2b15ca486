package dto

// LoginDTO 运营后台登录入参
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenDTO 登录成功返回的令牌
type TokenDTO struct {
	Token string `json:"token"`
}
