// Package catalog supplies the ordered list of study modules.
//
// A catalog is read fresh on every call; callers must not rely on caching
// and loaders never hand out shared slices.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studyplan/backend/config"
	"studyplan/backend/models"
)

// Loader returns the catalog in study order.
type Loader interface {
	Load(ctx context.Context) ([]models.Module, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) ([]models.Module, error)

func (f LoaderFunc) Load(ctx context.Context) ([]models.Module, error) {
	return f(ctx)
}

// Static serves a fixed catalog. Each Load returns a fresh copy.
func Static(modules []models.Module) Loader {
	return LoaderFunc(func(context.Context) ([]models.Module, error) {
		out := make([]models.Module, len(modules))
		copy(out, modules)
		return out, nil
	})
}

// NewLoader picks the catalog source configured by CATALOG_SOURCE.
func NewLoader(cfg *config.Config, db *gorm.DB) (Loader, error) {
	switch cfg.CatalogSource {
	case "xlsx", "":
		return NewXLSXLoader(cfg.CatalogPath), nil
	case "db":
		if db == nil {
			return nil, errors.New("catalog source db requires a database connection")
		}
		return NewStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported CATALOG_SOURCE %q", cfg.CatalogSource)
	}
}
