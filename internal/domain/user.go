package domain

import (
	"strings"
	"time"
)

// Role 用户角色
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleNormalUser  Role = "NormalUser"
	RolePremiumUser Role = "PremiumUser"
)

// Valid 判断角色是否合法
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleNormalUser, RolePremiumUser:
		return true
	}
	return false
}

// StatusActive 邮箱验证通过后的用户状态
const StatusActive = "Active"

// User 用户实体
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"` // 唯一
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Status       *string   `json:"status,omitempty"` // 可空，如"Active"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate 验证用户数据
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrInvalidUsername
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// Activate 标记邮箱验证通过
func (u *User) Activate() {
	status := StatusActive
	u.Status = &status
	u.UpdatedAt = time.Now()
}

// IsActive 判断用户是否已激活
func (u *User) IsActive() bool {
	return u.Status != nil && *u.Status == StatusActive
}
