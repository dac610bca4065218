package models

import "gorm.io/gorm"

// DefaultWeight is used when a catalog row has no usable Hours value.
const DefaultWeight = 1.0

// Module is one unit of course content. Course and Module together identify it.
type Module struct {
	Course    string  `json:"course" validate:"required"`
	Module    string  `json:"module" validate:"required"`
	Topics    string  `json:"topics"`
	ColabLink string  `json:"colab_link"`
	Weight    float64 `json:"weight,omitempty"`
}

// Label is the "<Course> - <Module>" form used by clients to mark completed modules.
func (m Module) Label() string {
	return m.Course + " - " + m.Module
}

// CatalogModule is the persisted form of a catalog row.
type CatalogModule struct {
	gorm.Model
	Position  int     `gorm:"index;not null"`
	Course    string  `gorm:"uniqueIndex:idx_catalog_course_module;not null"`
	ModuleID  string  `gorm:"uniqueIndex:idx_catalog_course_module;not null"`
	Topics    string
	ColabLink string
	Hours     float64 `gorm:"default:1"`
}

func (CatalogModule) TableName() string {
	return "catalog_modules"
}

func (cm CatalogModule) ToModule() Module {
	weight := cm.Hours
	if weight <= 0 {
		weight = DefaultWeight
	}
	return Module{
		Course:    cm.Course,
		Module:    cm.ModuleID,
		Topics:    cm.Topics,
		ColabLink: cm.ColabLink,
		Weight:    weight,
	}
}
