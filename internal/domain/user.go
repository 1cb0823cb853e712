package domain

import (
	"time"

	"gorm.io/gorm"

	"housemax/pkg/utils"
)

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

func (r UserRole) Valid() bool { return r == RoleAdmin || r == RoleUser }

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Role         UserRole  `gorm:"size:16;not null;default:USER" json:"role"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Orders  []Order  `gorm:"foreignKey:UserID" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// UserWithOrders is a user with its order and review history loaded.
type UserWithOrders struct {
	User
	Orders  []Order  `json:"orders"`
	Reviews []Review `json:"reviews"`
}
