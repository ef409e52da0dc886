package part

import (
	"context"
	"fmt"

	"inventory-manager/feature/part/models"

	"gorm.io/gorm"
)

// Repository runs the part queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new part repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetPart loads a part by primary key. It returns gorm.ErrRecordNotFound when missing.
func (r *Repository) GetPart(ctx context.Context, id int) (*models.Part, error) {
	var p models.Part
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetCategory loads a category by primary key.
func (r *Repository) GetCategory(ctx context.Context, id int) (*models.PartCategory, error) {
	var c models.PartCategory
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CategoryParts lists the parts directly in a category.
func (r *Repository) CategoryParts(ctx context.Context, categoryID int) ([]models.Part, error) {
	parts := []models.Part{}
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parts of category %d: %w", categoryID, err)
	}
	return parts, nil
}

// PartStock sums the quantity of every stock item of a part.
func (r *Repository) PartStock(ctx context.Context, partID int) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.StockItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("part_id = ?", partID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum stock of part %d: %w", partID, err)
	}
	return total, nil
}

// PartProjects lists the projects using a part, once each, in the order they were linked.
func (r *Repository) PartProjects(ctx context.Context, partID int) ([]models.Project, error) {
	var projectIDs []int
	err := r.db.WithContext(ctx).
		Model(&models.ProjectPart{}).
		Where("part_id = ?", partID).
		Order("id").
		Pluck("project_id", &projectIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list project links of part %d: %w", partID, err)
	}

	projects := []models.Project{}
	if len(projectIDs) == 0 {
		return projects, nil
	}

	var rows []models.Project
	if err := r.db.WithContext(ctx).Where("id IN ?", projectIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load projects of part %d: %w", partID, err)
	}

	byID := make(map[int]models.Project, len(rows))
	for _, p := range rows {
		byID[p.ID] = p
	}

	seen := make(map[int]bool, len(projectIDs))
	for _, id := range projectIDs {
		p, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		projects = append(projects, p)
	}
	return projects, nil
}
