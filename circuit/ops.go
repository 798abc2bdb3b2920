package circuit

import "sort"

// OpCount is one aggregated entry of CountOps.
type OpCount struct {
	Name  string
	Count uint64
}

// OpCounts is the aggregated result of CountOps, ordered by descending
// count with name as tie-break. The order is deterministic but not a
// semantic guarantee; compare results via Map.
type OpCounts []OpCount

// Map returns the result as a name to count mapping.
func (o OpCounts) Map() map[string]uint64 {
	m := make(map[string]uint64, len(o))
	for _, e := range o {
		m[e.Name] = e.Count
	}
	return m
}

// Total returns the sum of all counts, which equals the instruction count
// of the circuit the result was aggregated from.
func (o OpCounts) Total() uint64 {
	var total uint64
	for _, e := range o {
		total += e.Count
	}
	return total
}

// CountOps groups the stored instructions by kind name and reports how
// often each occurs. Every distinct name appears exactly once and the
// counts sum to NumInstructions.
func (c *Circuit) CountOps() OpCounts {
	counts := make(map[string]uint64)
	for i := range c.instructions {
		counts[c.instructions[i].name()]++
	}
	out := make(OpCounts, 0, len(counts))
	for name, n := range counts {
		out = append(out, OpCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
