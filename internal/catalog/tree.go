package catalog

import (
	"boutique_back_end/internal/models"

	"github.com/gocql/gocql"
)

// Build transforme une liste plate de catégories en forêt imbriquée.
// rootParent vaut nil pour partir des racines (parent_id null).
//
// Les enfants sont pré-indexés par parent, la construction est donc en O(n)
// au total. L'ordre relatif des enfants est celui de la liste d'entrée, sans
// tri. Une catégorie dont le parent déclaré n'existe pas n'est jamais
// atteinte depuis la racine et disparaît simplement du résultat. Une boucle
// parent/enfant dans les données (A→B→A) est coupée au premier passage : un
// id déjà présent sur le chemin courant n'est pas redescendu.
func Build(categories []models.Category, rootParent *gocql.UUID) []*models.CategoryNode {
	byParent := make(map[string][]models.Category, len(categories))
	for _, cat := range categories {
		key := parentKey(cat.ParentID)
		byParent[key] = append(byParent[key], cat)
	}

	onPath := make(map[gocql.UUID]bool)
	return buildLevel(byParent, parentKey(rootParent), onPath)
}

func buildLevel(byParent map[string][]models.Category, parent string, onPath map[gocql.UUID]bool) []*models.CategoryNode {
	var nodes []*models.CategoryNode
	for _, cat := range byParent[parent] {
		if onPath[cat.ID] {
			// cycle dans les données : on coupe la branche
			continue
		}
		onPath[cat.ID] = true

		node := &models.CategoryNode{Category: cat}
		if children := buildLevel(byParent, cat.ID.String(), onPath); len(children) > 0 {
			node.Children = children
		}

		delete(onPath, cat.ID)
		nodes = append(nodes, node)
	}
	return nodes
}

func parentKey(id *gocql.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
