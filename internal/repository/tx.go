package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB pgxpool.Pool与pgx.Tx的公共查询接口
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tx 事务执行器接口，级联删除等多步写操作通过它保证原子性
type Tx interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// TxManager 基于pgx的事务执行器
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager 创建事务执行器
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTx 在单个事务内执行fn，fn返回错误时回滚
// 事务通过context传递给仓储方法，嵌套调用复用外层事务
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	ctx = context.WithValue(ctx, txKey{}, tx)
	if err := fn(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// queryer 返回当前有效的查询接口：事务优先，否则连接池
func queryer(ctx context.Context, pool *pgxpool.Pool) DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return pool
}
