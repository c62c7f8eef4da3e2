package pets

import "slices"

// Sorted pone las favoritas primero. Orden estable: dentro de cada grupo se respeta
// el orden de inserción. No modifica la entrada.
func Sorted(items []Pet) []Pet {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Pet) int {
		switch {
		case a.IsFavorite == b.IsFavorite:
			return 0
		case a.IsFavorite:
			return -1
		default:
			return 1
		}
	})
	return out
}

// Favorites cuenta las favoritas.
func Favorites(items []Pet) int {
	n := 0
	for _, p := range items {
		if p.IsFavorite {
			n++
		}
	}
	return n
}
