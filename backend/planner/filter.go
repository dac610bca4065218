package planner

import (
	"strings"

	"studyplan/backend/models"
)

// Key identifies a module within the catalog.
type Key struct {
	Course   string
	ModuleID string
}

func KeyOf(m models.Module) Key {
	return Key{Course: m.Course, ModuleID: m.Module}
}

// String renders the key the way clients send completed modules.
func (k Key) String() string {
	return k.Course + " - " + k.ModuleID
}

// CompletedSet holds the keys of modules a learner has already finished.
type CompletedSet map[string]struct{}

// NewCompletedSet builds a set from "<Course> - <Module>" labels.
func NewCompletedSet(labels []string) CompletedSet {
	set := make(CompletedSet, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		set[label] = struct{}{}
	}
	return set
}

func (s CompletedSet) Add(k Key) {
	s[k.String()] = struct{}{}
}

func (s CompletedSet) Contains(k Key) bool {
	_, ok := s[k.String()]
	return ok
}

// Filter returns the catalog without completed modules. Order is preserved
// and the catalog itself is left untouched.
func Filter(catalog []models.Module, completed CompletedSet) []models.Module {
	remaining := make([]models.Module, 0, len(catalog))
	for _, m := range catalog {
		if len(completed) > 0 && completed.Contains(KeyOf(m)) {
			continue
		}
		remaining = append(remaining, m)
	}
	return remaining
}
