package portfolio

// orderedGroups is a multimap that remembers the order in which keys first appeared.
// Values under a key keep their insertion order.
type orderedGroups[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

func newOrderedGroups[K comparable, V any]() *orderedGroups[K, V] {
	return &orderedGroups[K, V]{values: make(map[K][]V)}
}

func (g *orderedGroups[K, V]) Add(key K, value V) {
	if _, seen := g.values[key]; !seen {
		g.keys = append(g.keys, key)
	}
	g.values[key] = append(g.values[key], value)
}

func (g *orderedGroups[K, V]) Len() int {
	return len(g.keys)
}

// Each visits the groups in first-appearance order and stops at the first error
func (g *orderedGroups[K, V]) Each(fn func(key K, values []V) error) error {
	for _, key := range g.keys {
		if err := fn(key, g.values[key]); err != nil {
			return err
		}
	}
	return nil
}
