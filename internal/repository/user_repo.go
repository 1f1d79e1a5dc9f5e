package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// userRepository PostgreSQL用户仓储实现
type userRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, role, password_hash, date_of_birth, status, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.PasswordHash,
		&user.DateOfBirth,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建用户，ID由数据库生成
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, role, password_hash, date_of_birth, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Role,
		user.PasswordHash,
		user.DateOfBirth,
		user.Status,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
}

// GetByID 根据ID获取用户
func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(queryer(ctx, r.db).QueryRow(ctx, query, id))
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(queryer(ctx, r.db).QueryRow(ctx, query, email))
}

// List 获取全部用户
func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Role,
			&user.PasswordHash,
			&user.DateOfBirth,
			&user.Status,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// Update 更新用户
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, role = $4, password_hash = $5, date_of_birth = $6, status = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := queryer(ctx, r.db).Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.Role,
		user.PasswordHash,
		user.DateOfBirth,
		user.Status,
		user.UpdatedAt,
	)
	return err
}

// UpdateRole 更新用户角色
func (r *userRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	query := `UPDATE users SET role = $2, updated_at = $3 WHERE id = $1`
	_, err := queryer(ctx, r.db).Exec(ctx, query, id, role, time.Now())
	return err
}

// UpdateStatus 更新用户状态
func (r *userRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE users SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := queryer(ctx, r.db).Exec(ctx, query, id, status, time.Now())
	return err
}

// Delete 删除用户
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
