package postgres

import (
	"time"
)

type UserModel struct {
	Id        string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type PostModel struct {
	Id          string `gorm:"type:varchar(36);primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string     `gorm:"not null"`
	Description string     `gorm:"not null"`
	Url         string     `gorm:"not null"`
	Status      string     `gorm:"not null"`
	UserId      string     `gorm:"type:varchar(36);not null;index"`
	User        *UserModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (PostModel) TableName() string {
	return "posts"
}
