package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"health-monitor/internal/models"

	"go.uber.org/zap"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// UserRepository 用户仓库（只读）
type UserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *sql.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// ListUsers 获取全部用户，按姓名排序
func (r *UserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT user_id, name, age, gender, height_cm, weight_kg
		FROM users
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query users: %v", ErrDataAccess, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Name, &u.Age, &u.Gender, &u.HeightCm, &u.WeightKg); err != nil {
			return nil, fmt.Errorf("%w: scan user row: %v", ErrDataAccess, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate user rows: %v", ErrDataAccess, err)
	}

	return users, nil
}

// GetUser 根据用户ID获取用户信息
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT user_id, name, age, gender, height_cm, weight_kg
		FROM users
		WHERE user_id = $1
	`

	var u models.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&u.UserID, &u.Name, &u.Age, &u.Gender, &u.HeightCm, &u.WeightKg,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("%w: query user: %v", ErrDataAccess, err)
	}

	return &u, nil
}
