package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/service"
)

// SubscriptionHandler 订阅处理器
type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

// NewSubscriptionHandler 创建订阅处理器
func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// CheckoutRequest 创建支付会话请求
type CheckoutRequest struct {
	Amount       float64 `json:"amount" binding:"required"`
	DurationDays int     `json:"duration_days" binding:"required"`
	SuccessURL   string  `json:"success_url"`
	CancelURL    string  `json:"cancel_url"`
}

// CreateCheckout 创建支付会话
// POST /api/v1/subscriptions/checkout
func (h *SubscriptionHandler) CreateCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	session, err := h.subscriptionService.CreateCheckoutSession(
		c.Request.Context(), getAuthUserID(c), req.Amount, req.DurationDays, req.SuccessURL, req.CancelURL)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, session)
}

// ActivateRequest 激活订阅请求，由支付回调或管理员触发
type ActivateRequest struct {
	UserID       int64   `json:"user_id" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	DurationDays int     `json:"duration_days" binding:"required"`
}

// Activate 激活订阅并提升用户角色
// POST /api/v1/subscriptions/activate
func (h *SubscriptionHandler) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	premium, err := h.subscriptionService.ActivateSubscription(c.Request.Context(), req.UserID, req.Amount, req.DurationDays)
	if err != nil {
		handleError(c, err)
		return
	}
	Created(c, premium)
}

// GetMySubscription 获取当前用户的订阅信息
// GET /api/v1/subscriptions/mine
func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	premium, err := h.subscriptionService.GetSubscription(c.Request.Context(), getAuthUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, premium)
}
