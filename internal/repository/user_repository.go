package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("email ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateVerification invalidates any outstanding codes before storing the new
// one, so only the most recent code can verify the account.
func (r *UserRepository) CreateVerification(ctx context.Context, verification *model.EmailVerification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&model.EmailVerification{}).
			Where("user_id = ? AND consumed_at IS NULL", verification.UserID).
			Update("consumed_at", now).Error; err != nil {
			return err
		}
		return tx.Create(verification).Error
	})
}

func (r *UserRepository) ActiveVerification(ctx context.Context, userID uuid.UUID) (*model.EmailVerification, error) {
	var verification model.EmailVerification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at IS NULL AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &verification, nil
}

func (r *UserRepository) ConsumeVerification(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.EmailVerification{}).
		Where("id = ?", id).
		Update("consumed_at", now).Error
}
