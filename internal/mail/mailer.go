// Package mail 邮件发送
package mail

import (
	"context"
	"errors"
)

// ErrDeliveryFailed 邮件投递失败
var ErrDeliveryFailed = errors.New("mail delivery failed")

// Mailer 邮件发送接口
type Mailer interface {
	// Send 发送HTML邮件，传输失败时返回ErrDeliveryFailed包装错误
	Send(ctx context.Context, to, subject, htmlBody string) error
}
