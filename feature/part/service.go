package part

import (
	"context"

	"inventory-manager/feature/part/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PartDetail is a part with its aggregates.
type PartDetail struct {
	Part     *models.Part     `json:"part"`
	Stock    float64          `json:"stock"`
	Projects []models.Project `json:"projects"`
}

// Service handles part operations.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a new part service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		repo:   NewRepository(db),
		logger: logger,
	}
}

// Repository returns the underlying repository.
func (s *Service) Repository() *Repository {
	return s.repo
}

// GetPartDetail loads a part with its stock total and projects.
func (s *Service) GetPartDetail(ctx context.Context, id int) (*PartDetail, error) {
	p, err := s.repo.GetPart(ctx, id)
	if err != nil {
		return nil, err
	}

	stock, err := s.repo.PartStock(ctx, id)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.PartProjects(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PartDetail{Part: p, Stock: stock, Projects: projects}, nil
}

// ListCategoryParts lists the parts of an existing category.
func (s *Service) ListCategoryParts(ctx context.Context, categoryID int) ([]models.Part, error) {
	if _, err := s.repo.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.CategoryParts(ctx, categoryID)
}
