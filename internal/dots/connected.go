package dots

// ConnectedSets splits s into its maximal connected components. Dots connect
// horizontally and vertically, not diagonally.
func ConnectedSets(s Set) []Set {
	var components []Set
	seen := make(Set, len(s))
	for start := range s {
		if seen.Contains(start) {
			continue
		}
		component := NewSet(start)
		queue := []Dot{start}
		for len(queue) > 0 {
			d := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			for _, n := range [4]Dot{
				{Row: d.Row + 1, Col: d.Col},
				{Row: d.Row - 1, Col: d.Col},
				{Row: d.Row, Col: d.Col + 1},
				{Row: d.Row, Col: d.Col - 1},
			} {
				if s.Contains(n) && !component.Contains(n) {
					component.Add(n)
					queue = append(queue, n)
				}
			}
		}
		components = append(components, component)
		for d := range component {
			seen.Add(d)
		}
	}
	return components
}
