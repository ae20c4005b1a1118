package common

// Flatten concatenates parts in order into a single slice.
func Flatten[S ~[]E, E any](parts []S) S {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	out := make(S, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
