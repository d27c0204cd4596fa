package services

import (
	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/rs/zerolog/log"
)

type TagService interface {
	GetTags() ([]string, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) GetTags() ([]string, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("list tags failed")
		return nil, models.NewInternalServer("could not list tags")
	}

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names, nil
}
