package campus

// Reachable returns the set of node IDs reachable from id over walkable edges,
// including id itself. Unknown IDs yield an empty set.
//
// Time:   O(V + E).
// Memory: O(V).
func (g *Graph) Reachable(id string) map[string]bool {
	seen := make(map[string]bool)
	if !g.HasNode(id) {
		return seen
	}
	queue := []string{id}
	seen[id] = true
	for qi := 0; qi < len(queue); qi++ {
		for v := range g.adjacency[queue[qi]] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// Components partitions the nodes into walkable connected components.
// Components are ordered by their first node in input order; members keep
// input order as well.
//
// Time:   O(V + E).
// Memory: O(V).
func (g *Graph) Components() [][]string {
	comp := make(map[string]int, len(g.nodes))
	var out [][]string
	for _, n := range g.nodes {
		if _, done := comp[n.ID]; done {
			continue
		}
		label := len(out)
		for v := range g.Reachable(n.ID) {
			comp[v] = label
		}
		out = append(out, nil)
	}
	for _, n := range g.nodes {
		out[comp[n.ID]] = append(out[comp[n.ID]], n.ID)
	}

	return out
}

// IsolatedKeys returns key locations that cannot reach any other key location.
// An empty result means every key pair is routable or there is at most one key.
func (g *Graph) IsolatedKeys() []string {
	keys := g.KeyIDs()
	if len(keys) < 2 {
		return nil
	}
	var isolated []string
	for _, group := range g.Components() {
		var inGroup []string
		for _, id := range group {
			if g.IsKey(g.nodes[g.index[id]]) {
				inGroup = append(inGroup, id)
			}
		}
		if len(inGroup) == 1 {
			isolated = append(isolated, inGroup[0])
		}
	}

	return isolated
}
