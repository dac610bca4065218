package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyplan/backend/models"
)

func TestFilterRemovesCompleted(t *testing.T) {
	catalog := makeModules(6)
	completed := NewCompletedSet([]string{
		catalog[1].Label(),
		"  " + catalog[4].Label() + " ",
		"Unknown - X",
		"",
	})

	remaining := Filter(catalog, completed)

	assert.Equal(t, []string{"M01", "M03", "M04", "M06"}, moduleIDs(remaining))
	assert.Len(t, catalog, 6, "catalog must not be mutated")
}

func TestFilterIsIdempotent(t *testing.T) {
	catalog := makeModules(10)
	completed := NewCompletedSet(nil)
	completed.Add(KeyOf(catalog[0]))
	completed.Add(KeyOf(catalog[9]))

	once := Filter(catalog, completed)
	twice := Filter(once, completed)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 8)
}

func TestFilterEmptySetKeepsCatalog(t *testing.T) {
	catalog := makeModules(4)
	assert.Equal(t, catalog, Filter(catalog, nil))
}

func TestFilterEverythingCompleted(t *testing.T) {
	catalog := makeModules(3)
	labels := make([]string, 0, len(catalog))
	for _, m := range catalog {
		labels = append(labels, m.Label())
	}
	assert.Empty(t, Filter(catalog, NewCompletedSet(labels)))
}

func TestKeyMatchesModuleLabel(t *testing.T) {
	m := makeModules(1)[0]
	assert.Equal(t, m.Label(), KeyOf(m).String())
	assert.Equal(t, "Course 1 - M01", KeyOf(m).String())
}

func moduleIDs(modules []models.Module) []string {
	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		ids = append(ids, m.Module)
	}
	return ids
}
