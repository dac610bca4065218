package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studyplan/backend/models"
)

// Store keeps the catalog in the catalog_modules table.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Load(ctx context.Context) ([]models.Module, error) {
	var rows []models.CatalogModule
	if err := s.DB.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	modules := make([]models.Module, 0, len(rows))
	for _, row := range rows {
		modules = append(modules, row.ToModule())
	}
	return modules, nil
}

// Replace swaps the stored catalog for modules, keeping their order.
func (s *Store) Replace(ctx context.Context, modules []models.Module) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.CatalogModule{}).Error; err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
		if len(modules) == 0 {
			return nil
		}

		rows := make([]models.CatalogModule, 0, len(modules))
		for i, m := range modules {
			rows = append(rows, models.CatalogModule{
				Position:  i,
				Course:    m.Course,
				ModuleID:  m.Module,
				Topics:    m.Topics,
				ColabLink: m.ColabLink,
				Hours:     m.Weight,
			})
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("insert catalog: %w", err)
		}
		return nil
	})
}
