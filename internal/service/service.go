// Package service 领域服务层：组合仓储调用、校验与跨实体一致性规则
package service

// Limits 普通用户配额，只对NormalUser角色生效
type Limits struct {
	MaxPlaylistsPerUser int
	MaxSongsPerPlaylist int
}

// LimitsProvider 配额提供者，调用时读取当前配置
type LimitsProvider interface {
	Limits() Limits
}

// StaticLimits 固定配额，用于简单部署与测试
type StaticLimits Limits

// Limits 返回固定配额
func (s StaticLimits) Limits() Limits {
	return Limits(s)
}

// TokenIssuer 令牌签发接口
type TokenIssuer interface {
	GenerateToken(userID int64, email, role string) (string, error)
	GenerateShortLivedToken(userID int64, email, role string) (string, error)
}
