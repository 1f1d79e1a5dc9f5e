package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/service"
)

// UserHandler 用户管理处理器
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser 获取用户详情，仅本人或管理员可访问
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		Forbidden(c, "forbidden")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, toUserInfo(user))
}

// ListUsers 获取全部用户，仅管理员可访问
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	infos := make([]UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, toUserInfo(u))
	}
	Success(c, gin.H{"items": infos, "total": len(infos)})
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email" binding:"omitempty,email"`
	DateOfBirth string `json:"date_of_birth"`
}

// UpdateUser 更新用户资料，仅本人或管理员可访问
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		Forbidden(c, "forbidden")
		return
	}

	var req UpdateUserRequest
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

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.Username, req.Email, dob)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, toUserInfo(user))
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword 修改密码，仅本人可操作
// PUT /api/v1/users/:id/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if getAuthUserID(c) != id {
		Forbidden(c, "forbidden")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"message": "password updated"})
}

// DeleteUser 删除用户及其全部关联数据，仅本人或管理员可操作
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !canAccessUser(c, id) {
		Forbidden(c, "forbidden")
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, toUserInfo(user))
}

// canAccessUser 本人或管理员
func canAccessUser(c *gin.Context, userID int64) bool {
	return getAuthUserID(c) == userID || getAuthRole(c) == string(domain.RoleAdmin)
}
