package rules

import "github.com/katalvlaran/wavecollapse/gridpos"

// halfEdge identifies one tid's border facing a given direction.
type halfEdge struct {
	tid uint64
	dir gridpos.Direction
}

// BorderAnalyze computes border-equivalence classes over (tid, direction)
// half-edges: two half-edges merge into one class whenever they are
// observed "mated" in a sample, i.e. tid a's dir-facing border touches tid
// b's opposite(dir)-facing border. After saturating the union-find over
// every sample, the analyzer derives adjacency by pairing every tid on one
// side of a class with every tid on the opposite side, producing a more
// permissive ruleset than IdentityAnalyze.
func BorderAnalyze(samples ...*gridpos.CollapsedGrid) (*AdjacencyTable, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	// DSU init, using the parent/rank-map idiom of a Kruskal's MST
	// union-find.
	parent := make(map[halfEdge]halfEdge)
	rank := make(map[halfEdge]int)

	var find func(halfEdge) halfEdge
	find = func(h halfEdge) halfEdge {
		root, ok := parent[h]
		if !ok {
			parent[h] = h
			return h
		}
		if root != h {
			root = find(root)
			parent[h] = root
		}
		return root
	}
	union := func(a, b halfEdge) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	for _, sample := range samples {
		size := sample.Size()
		for _, p := range sample.Positions() {
			tid, ok := sample.Get(p)
			if !ok {
				continue
			}
			for _, dir := range gridpos.AllDirections {
				np, ok := size.Step(p, dir)
				if !ok {
					continue
				}
				ntid, ok := sample.Get(np)
				if !ok {
					continue
				}
				union(halfEdge{tid: tid, dir: dir}, halfEdge{tid: ntid, dir: dir.Opposite()})
			}
		}
	}

	// Finalize: group half-edges by resolved root class.
	classes := make(map[halfEdge][]halfEdge)
	for h := range parent {
		root := find(h)
		classes[root] = append(classes[root], h)
	}

	adj := NewAdjacencyTable()
	for _, members := range classes {
		// Every half-edge created by a union shares a direction pair
		// {dir, opposite(dir)} because unions are only ever created between
		// a half-edge and its mate's opposite-facing half-edge. Split the
		// class by its two directions and pair every tid on one side with
		// every tid on the other.
		if len(members) == 0 {
			continue
		}
		dirA := members[0].dir
		dirB := dirA.Opposite()
		var sideA, sideB []uint64
		for _, h := range members {
			switch h.dir {
			case dirA:
				sideA = append(sideA, h.tid)
			case dirB:
				sideB = append(sideB, h.tid)
			}
		}
		for _, a := range sideA {
			for _, b := range sideB {
				adj.AddSymmetric(a, dirA, b)
			}
		}
	}

	return adj, nil
}
