package repository

import (
	"errors"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
	"github.com/veyra-labs/veyra-risk-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultValidationCacheRepository struct {
	DB *gorm.DB
}

func NewDefaultValidationCacheRepository(db *gorm.DB) *DefaultValidationCacheRepository {
	return &DefaultValidationCacheRepository{DB: db}
}

func (r *DefaultValidationCacheRepository) Get(subjectKey string) (*domain.ValidationCacheEntry, error) {
	var model models.ValidationCacheModel
	if err := r.DB.First(&model, "subject_key = ?", subjectKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &domain.ValidationCacheEntry{
		SubjectKey: model.SubjectKey,
		Kind:       model.Kind,
		Score:      model.Score,
		FlagsJSON:  model.FlagsJSON,
		FetchedAt:  model.FetchedAt,
	}, nil
}

// Upsert is last-write-wins on subject key; entries are immutable facts
// refreshed periodically, so concurrent writers for the same key are safe.
func (r *DefaultValidationCacheRepository) Upsert(entry *domain.ValidationCacheEntry) error {
	model := &models.ValidationCacheModel{
		SubjectKey: entry.SubjectKey,
		Kind:       entry.Kind,
		Score:      entry.Score,
		FlagsJSON:  entry.FlagsJSON,
		FetchedAt:  entry.FetchedAt,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_key"}},
		UpdateAll: true,
	}).Create(model).Error
}
