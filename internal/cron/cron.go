// Package cron 订阅到期定时任务
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tunewave/server/internal/service"
	"github.com/tunewave/server/pkg/logger"
)

// Manager 定时任务管理器，周期性执行到期提醒与过期清理
type Manager struct {
	cron                *cron.Cron
	subscriptionService *service.SubscriptionService
	log                 logger.Logger
	spec                string
}

// NewManager 创建定时任务管理器，spec为cron表达式（分 时 日 月 周）
func NewManager(subscriptionService *service.SubscriptionService, log logger.Logger, spec string) *Manager {
	if spec == "" {
		spec = "*/10 * * * *"
	}
	return &Manager{
		cron:                cron.New(cron.WithLocation(time.Local)),
		subscriptionService: subscriptionService,
		log:                 log,
		spec:                spec,
	}
}

// Start 注册并启动定时任务
func (m *Manager) Start() error {
	_, err := m.cron.AddFunc(m.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		m.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	m.cron.Start()
	m.log.Info("subscription notifier started", logger.F("spec", m.spec))
	return nil
}

// Stop 停止定时任务并等待运行中的任务结束
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info("subscription notifier stopped")
}

// RunOnce 立即执行一轮提醒与清理，提醒在清理之前执行
func (m *Manager) RunOnce(ctx context.Context) {
	start := time.Now()

	if err := m.subscriptionService.NotifyExpiring(ctx); err != nil {
		m.log.Error("subscription notify run failed", logger.Err(err))
	}
	if err := m.subscriptionService.ExpireSubscriptions(ctx); err != nil {
		m.log.Error("subscription expire run failed", logger.Err(err))
	}

	m.log.Info("subscription notifier run completed",
		logger.F("duration_ms", time.Since(start).Milliseconds()))
}
