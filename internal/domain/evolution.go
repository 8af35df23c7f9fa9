package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type EvolutionNode struct {
	SpeciesName string
	SpeciesURL  string
}

// ID is the numeric species id taken from the last path segment of the
// species URL, or 0 when the URL carries none.
func (n EvolutionNode) ID() int {
	return ResourceID(n.SpeciesURL)
}

type ChainLink struct {
	Species   ResourceRef
	EvolvesTo []ChainLink
}

// LinearizeFirstBranch walks the chain from its root, always following the
// first listed evolution. Alternate branches are not visited.
func LinearizeFirstBranch(root ChainLink) []EvolutionNode {
	var nodes []EvolutionNode
	current := &root
	for current != nil {
		nodes = append(nodes, EvolutionNode{
			SpeciesName: current.Species.Name,
			SpeciesURL:  current.Species.URL,
		})
		if len(current.EvolvesTo) == 0 {
			break
		}
		current = &current.EvolvesTo[0]
	}
	return nodes
}

func ResourceID(resourceURL string) int {
	segments := strings.Split(strings.Trim(resourceURL, "/"), "/")
	if len(segments) == 0 {
		return 0
	}
	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func SpriteURL(baseURL string, id int) string {
	return fmt.Sprintf("%s/%d.png", strings.TrimRight(baseURL, "/"), id)
}

type Species struct {
	Name              string
	EvolutionChainURL string
}
