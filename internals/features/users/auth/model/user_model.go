package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/constants"
)

type UserModel struct {
	UserID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserFullName       string         `gorm:"type:varchar(100);not null" json:"user_full_name"`
	UserUsername       string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"user_username"`
	UserEmail          string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"user_email"`
	UserPassword       string         `gorm:"type:varchar(250);not null" json:"-"`
	UserRole           string         `gorm:"type:varchar(20);default:'kk';not null" json:"user_role"`
	UserIsActive       bool           `gorm:"default:false;not null" json:"user_is_active"`
	UserActivationCode string         `gorm:"type:varchar(50)" json:"-"`
	UserCreatedAt      time.Time      `gorm:"autoCreateTime" json:"user_created_at"`
	UserUpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt      gorm.DeletedAt `gorm:"column:user_deleted_at" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsAdmin() bool {
	return u.UserRole == constants.RoleAdmin
}
