package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Bio       string         `json:"bio" gorm:"not null;default:''"`
	Image     string         `json:"image" gorm:"not null;default:''"`
	Favorites []Article      `json:"-" gorm:"many2many:user_favorites;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// HasFavorited reports membership of the article in the user's favorite set.
// Favorites must have been loaded by the repository.
func (u *User) HasFavorited(articleID uint) bool {
	for _, a := range u.Favorites {
		if a.ID == articleID {
			return true
		}
	}
	return false
}
