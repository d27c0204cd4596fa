package services

import (
	"errors"

	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(draft models.ArticleDraft, userID uint) (*models.Article, error)
	GetArticle(slug string) (*models.Article, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	UpdateArticle(slug string, patch models.ArticlePatch, userID uint) (*models.Article, error)
	DeleteArticle(slug string, userID uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	tagRepo     repositories.TagRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, tagRepo repositories.TagRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
	}
}

// isOwner gates update and delete: only the fixed author may mutate. Failing
// the check is an authorization error, not a lookup miss — the article stays
// visible to the actor.
func isOwner(ownerID, actingUserID uint) bool {
	return ownerID == actingUserID
}

// mergeArticlePatch applies only the fields present in the patch onto the
// existing record and reports whether the title changed, which is what
// decides slug regeneration.
func mergeArticlePatch(article *models.Article, patch models.ArticlePatch) (titleChanged bool) {
	if patch.Title != nil {
		article.Title = *patch.Title
		titleChanged = true
	}
	if patch.Description != nil {
		article.Description = *patch.Description
	}
	if patch.Body != nil {
		article.Body = *patch.Body
	}
	return titleChanged
}

func (s *articleService) CreateArticle(draft models.ArticleDraft, userID uint) (*models.Article, error) {
	tagList := draft.TagList
	if tagList == nil {
		tagList = []string{}
	}

	article := &models.Article{
		Slug:        generateSlug(draft.Title),
		Title:       draft.Title,
		Description: draft.Description,
		Body:        draft.Body,
		TagList:     tagList,
		AuthorID:    userID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflict("article slug already exists")
		}
		log.Error().Err(err).Str("slug", article.Slug).Msg("create article failed")
		return nil, models.NewInternalServer("could not create article")
	}

	// Record tag names for the tags listing; best effort
	if err := s.tagRepo.UpsertNames(tagList); err != nil {
		log.Warn().Err(err).Msg("recording tags failed")
	}

	return s.GetArticle(article.Slug)
}

func (s *articleService) GetArticle(slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("article not found")
		}
		log.Error().Err(err).Str("slug", slug).Msg("fetch article failed")
		return nil, models.NewInternalServer("could not fetch article")
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	articles, total, err := s.articleRepo.GetList(params)
	if err != nil {
		log.Error().Err(err).Msg("list articles failed")
		return nil, 0, models.NewInternalServer("could not list articles")
	}
	return articles, total, nil
}

func (s *articleService) UpdateArticle(slug string, patch models.ArticlePatch, userID uint) (*models.Article, error) {
	article, err := s.GetArticle(slug)
	if err != nil {
		return nil, err
	}

	if !isOwner(article.AuthorID, userID) {
		return nil, models.NewUnauthorized("only the author may update this article")
	}

	if mergeArticlePatch(article, patch) {
		// Title changed: the old slug becomes unreachable, no alias kept
		article.Slug = generateSlug(article.Title)
	}

	if err := s.articleRepo.Update(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflict("article slug already exists")
		}
		log.Error().Err(err).Str("slug", article.Slug).Msg("update article failed")
		return nil, models.NewInternalServer("could not update article")
	}

	return s.GetArticle(article.Slug)
}

func (s *articleService) DeleteArticle(slug string, userID uint) error {
	article, err := s.GetArticle(slug)
	if err != nil {
		return err
	}

	if !isOwner(article.AuthorID, userID) {
		return models.NewUnauthorized("only the author may delete this article")
	}

	if err := s.articleRepo.Delete(article); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("delete article failed")
		return models.NewInternalServer("could not delete article")
	}

	return nil
}
