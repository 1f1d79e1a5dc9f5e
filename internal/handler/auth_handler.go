package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/service"
)

// AuthHandler 认证与邮箱验证处理器
type AuthHandler struct {
	userService         *service.UserService
	verificationService *service.VerificationService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(userService *service.UserService, verificationService *service.VerificationService) *AuthHandler {
	return &AuthHandler{
		userService:         userService,
		verificationService: verificationService,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DateOfBirth string `json:"date_of_birth"` // 格式2006-01-02
}

// UserInfo 用户信息响应
type UserInfo struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toUserInfo(u *domain.User) UserInfo {
	info := UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.Status != nil {
		info.Status = *u.Status
	}
	if !u.DateOfBirth.IsZero() {
		info.DateOfBirth = u.DateOfBirth.Format("2006-01-02")
	}
	return info
}

// Register 注册用户
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	var dob time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			BadRequest(c, "invalid date_of_birth")
			return
		}
		dob = parsed
	}

	user, err := h.userService.Register(c.Request.Context(), req.Username, req.Email, req.Password, domain.RoleNormalUser, dob)
	if err != nil {
		handleError(c, err)
		return
	}

	// 注册后发送验证码，失败不阻断注册流程
	_ = h.verificationService.SendCode(c.Request.Context(), user.ID)

	Created(c, toUserInfo(user))
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	Success(c, LoginResponse{Token: token, User: toUserInfo(user)})
}

// SendVerification 发送邮箱验证码
// POST /api/v1/auth/verify/send
func (h *AuthHandler) SendVerification(c *gin.Context) {
	userID := getAuthUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return
	}

	if err := h.verificationService.SendCode(c.Request.Context(), userID); err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"message": "verification code sent"})
}

// ConfirmVerificationRequest 验证码确认请求
type ConfirmVerificationRequest struct {
	Code string `json:"code" binding:"required"`
}

// ConfirmVerification 确认邮箱验证码
// POST /api/v1/auth/verify/confirm
func (h *AuthHandler) ConfirmVerification(c *gin.Context) {
	userID := getAuthUserID(c)
	if userID == 0 {
		Unauthorized(c, "unauthorized")
		return
	}

	var req ConfirmVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.verificationService.Confirm(c.Request.Context(), userID, req.Code)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, toUserInfo(user))
}

// getAuthUserID 从上下文获取已认证的用户ID
func getAuthUserID(c *gin.Context) int64 {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// getAuthRole 从上下文获取已认证用户角色
func getAuthRole(c *gin.Context) string {
	if v, exists := c.Get("user_role"); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
