package uniq

import "fmt"

// Tally holds the item counts produced by Count.
type Tally struct {
	Total  int // number of items, duplicates included
	Unique int // number of distinct items
}

// String renders the tally as the exercise's summary sentence.
func (t Tally) String() string {
	return fmt.Sprintf("My original array contained %d total items and %d unique items!", t.Total, t.Unique)
}

// Count returns the total and distinct item counts of items.
func Count(items []string) Tally {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it] = struct{}{}
	}

	return Tally{Total: len(items), Unique: len(seen)}
}

// Distinct returns the distinct items in first-seen order.
// The input slice is left untouched.
func Distinct(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}

	return out
}
