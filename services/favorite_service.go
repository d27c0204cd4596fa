package services

import (
	"errors"

	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FavoriteService interface {
	AddFavorite(slug string, userID uint) (*models.Article, error)
	RemoveFavorite(slug string, userID uint) (*models.Article, error)
}

type favoriteService struct {
	articleRepo  repositories.ArticleRepository
	userRepo     repositories.UserRepository
	favoriteRepo repositories.FavoriteRepository
}

func NewFavoriteService(articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository, favoriteRepo repositories.FavoriteRepository) FavoriteService {
	return &favoriteService{
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *favoriteService) AddFavorite(slug string, userID uint) (*models.Article, error) {
	article, user, err := s.fetchPair(slug, userID)
	if err != nil {
		return nil, err
	}

	// Already favorited: no-op, return the article unchanged
	if user.HasFavorited(article.ID) {
		return article, nil
	}

	if err := s.favoriteRepo.Add(article.ID, user.ID); err != nil {
		log.Error().Err(err).Str("slug", slug).Uint("user_id", userID).Msg("add favorite failed")
		return nil, models.NewInternalServer("could not favorite article")
	}

	return s.refetch(article.Slug)
}

func (s *favoriteService) RemoveFavorite(slug string, userID uint) (*models.Article, error) {
	article, user, err := s.fetchPair(slug, userID)
	if err != nil {
		return nil, err
	}

	// Not in the favorite set: no-op, return the article unchanged
	if !user.HasFavorited(article.ID) {
		return article, nil
	}

	if err := s.favoriteRepo.Remove(article.ID, user.ID); err != nil {
		log.Error().Err(err).Str("slug", slug).Uint("user_id", userID).Msg("remove favorite failed")
		return nil, models.NewInternalServer("could not unfavorite article")
	}

	return s.refetch(article.Slug)
}

// fetchPair loads the article by slug and the acting user with their favorite
// set resolved. Either lookup missing is a NotFound.
func (s *favoriteService) fetchPair(slug string, userID uint) (*models.Article, *models.User, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFound("article not found")
		}
		log.Error().Err(err).Str("slug", slug).Msg("fetch article failed")
		return nil, nil, models.NewInternalServer("could not fetch article")
	}

	user, err := s.userRepo.GetByIDWithFavorites(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFound("user not found")
		}
		log.Error().Err(err).Uint("user_id", userID).Msg("fetch user failed")
		return nil, nil, models.NewInternalServer("could not fetch user")
	}

	return article, user, nil
}

func (s *favoriteService) refetch(slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("refetch article failed")
		return nil, models.NewInternalServer("could not fetch article")
	}
	return article, nil
}
