package models

import (
	"time"
)

type Article struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Slug           string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description" gorm:"not null;default:''"`
	Body           string    `json:"body" gorm:"not null;default:''"`
	TagList        []string  `json:"tagList" gorm:"serializer:json;not null"`
	AuthorID       uint      `json:"author_id" gorm:"not null"`
	Author         User      `json:"author" gorm:"foreignKey:AuthorID"`
	FavoritesCount int       `json:"favoritesCount" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
