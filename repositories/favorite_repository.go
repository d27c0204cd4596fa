package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
)

// FavoriteRepository manages the user_favorites relation together with the
// denormalized favorites_count on articles. Both sides of a toggle are
// written inside one transaction so the counter never drifts from the
// relation cardinality, even under concurrent toggles on the same article.
type FavoriteRepository interface {
	Add(articleID, userID uint) error
	Remove(articleID, userID uint) error
	IsFavorited(articleID, userID uint) (bool, error)
	CountForArticle(articleID uint) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(articleID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// The composite primary key on user_favorites makes the insert the
		// idempotence check: a second favorite from the same user inserts
		// nothing, so the counter is only bumped for a first-time favorite.
		res := tx.Exec(
			"INSERT INTO user_favorites (user_id, article_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			userID, articleID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
}

func (r *favoriteRepository) Remove(articleID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			"DELETE FROM user_favorites WHERE user_id = ? AND article_id = ?",
			userID, articleID,
		)
		if res.Error != nil {
			return res.Error
		}
		// Decrement is gated on an actual delete, so the counter cannot go
		// below the relation cardinality or below zero.
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Article{}).
			Where("id = ?", articleID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
	})
}

func (r *favoriteRepository) IsFavorited(articleID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("user_favorites").
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) CountForArticle(articleID uint) (int64, error) {
	var count int64
	err := r.db.Table("user_favorites").
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}
