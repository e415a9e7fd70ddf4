package world

import "math/rand"

// growRegion breadth-first flood-fills a contiguous region of free cells
// starting at start, visiting neighbors in randomized order. The target size
// is a soft cap: growth stops early when existing chunks block the frontier,
// and the smaller region is accepted as-is. The caller must ensure start is
// unoccupied.
func growRegion(rng *rand.Rand, s *State, start Coord, terrain string, targetSize int) *Region {
	if targetSize < 1 {
		targetSize = 1
	}

	cells := []Coord{start}
	member := map[Coord]struct{}{start: {}}
	queue := []Coord{start}

	for len(queue) > 0 && len(cells) < targetSize {
		current := queue[0]
		queue = queue[1:]

		neighbors := current.Neighbors4()
		for _, i := range rng.Perm(len(neighbors)) {
			if len(cells) >= targetSize {
				break
			}
			next := neighbors[i]
			if _, seen := member[next]; seen {
				continue
			}
			if s.Occupied(next) {
				continue
			}
			member[next] = struct{}{}
			cells = append(cells, next)
			queue = append(queue, next)
		}
	}

	return &Region{
		Terrain: terrain,
		Cells:   cells,
	}
}
