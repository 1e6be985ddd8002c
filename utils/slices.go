package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// RemoveAt returns a copy of slice without the element at i.
func RemoveAt[S ~[]T, T any](slice S, i int) S {
	out := make(S, 0, len(slice)-1)
	out = append(out, slice[:i]...)
	return append(out, slice[i+1:]...)
}

// Filter returns the elements of slice satisfying keep, in order.
func Filter[S ~[]T, T any](slice S, keep func(T) bool) S {
	var out S
	for _, v := range slice {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
