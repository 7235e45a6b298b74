package catalog

import (
	"encoding/json"
	"testing"

	"boutique_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUUID(t *testing.T, s string) gocql.UUID {
	t.Helper()
	id, err := gocql.ParseUUID(s)
	require.NoError(t, err)
	return id
}

func cat(t *testing.T, id string, parent string, name string) models.Category {
	t.Helper()
	c := models.Category{ID: mustUUID(t, id), Name: name}
	if parent != "" {
		p := mustUUID(t, parent)
		c.ParentID = &p
	}
	return c
}

const (
	idShoes   = "11111111-1111-1111-1111-111111111111"
	idRunning = "22222222-2222-2222-2222-222222222222"
	idOrphan  = "33333333-3333-3333-3333-333333333333"
	idTrail   = "44444444-4444-4444-4444-444444444444"
	idGhost   = "99999999-9999-9999-9999-999999999999"
)

func TestBuild_NestsChildrenAndOmitsOrphans(t *testing.T) {
	categories := []models.Category{
		cat(t, idShoes, "", "Shoes"),
		cat(t, idRunning, idShoes, "Running"),
		cat(t, idOrphan, idGhost, "Orphan"), // parent inexistant
	}

	forest := Build(categories, nil)

	require.Len(t, forest, 1)
	assert.Equal(t, "Shoes", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Running", forest[0].Children[0].Name)
	assert.Nil(t, forest[0].Children[0].Children)
}

func TestBuild_ChildrenKeptInInputOrder(t *testing.T) {
	categories := []models.Category{
		cat(t, idShoes, "", "Shoes"),
		cat(t, idTrail, idShoes, "Trail"),
		cat(t, idRunning, idShoes, "Running"),
		cat(t, idOrphan, "", "Accessoires"),
	}

	forest := Build(categories, nil)

	require.Len(t, forest, 2)
	assert.Equal(t, "Shoes", forest[0].Name)
	assert.Equal(t, "Accessoires", forest[1].Name)

	// Ordre d'entrée préservé, pas de tri par nom
	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, "Trail", forest[0].Children[0].Name)
	assert.Equal(t, "Running", forest[0].Children[1].Name)
}

func TestBuild_ChildrenKeyOmittedWhenEmpty(t *testing.T) {
	categories := []models.Category{
		cat(t, idShoes, "", "Shoes"),
		cat(t, idRunning, idShoes, "Running"),
	}

	data, err := json.Marshal(Build(categories, nil))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded, 1)
	assert.Contains(t, decoded[0], "children")

	children := decoded[0]["children"].([]any)
	leaf := children[0].(map[string]any)
	assert.NotContains(t, leaf, "children")
}

func TestBuild_TerminatesOnCycle(t *testing.T) {
	// A→B→A : aucun des deux n'est une racine, le sous-ensemble cyclique
	// n'apparaît pas depuis nil et la construction doit se terminer
	a := cat(t, idShoes, idRunning, "A")
	b := cat(t, idRunning, idShoes, "B")

	forest := Build([]models.Category{a, b}, nil)
	assert.Empty(t, forest)

	// En partant au milieu du cycle, chaque membre apparaît au plus une fois
	rootID := mustUUID(t, idShoes)
	forest = Build([]models.Category{a, b}, &rootID)
	require.Len(t, forest, 1)
	assert.Equal(t, "B", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "A", forest[0].Children[0].Name)
	assert.Nil(t, forest[0].Children[0].Children)
}

func TestBuild_FlattenedOutputMatchesReachableSet(t *testing.T) {
	categories := []models.Category{
		cat(t, idShoes, "", "Shoes"),
		cat(t, idRunning, idShoes, "Running"),
		cat(t, idTrail, idRunning, "Trail"),
		cat(t, idOrphan, idGhost, "Orphan"),
	}

	var flatten func(nodes []*models.CategoryNode) []string
	flatten = func(nodes []*models.CategoryNode) []string {
		var names []string
		for _, n := range nodes {
			names = append(names, n.Name)
			names = append(names, flatten(n.Children)...)
		}
		return names
	}

	got := flatten(Build(categories, nil))
	assert.ElementsMatch(t, []string{"Shoes", "Running", "Trail"}, got)
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil, nil))
	assert.Empty(t, Build([]models.Category{}, nil))
}
