package utils

import "fmt"

// Chunk splits items into consecutive groups of at most size elements
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("chunk size must be at least 1")
	}

	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks, nil
}

// Flatten concatenates nested slices into a single slice
func Flatten[T any](nested [][]T) []T {
	var flat []T
	for _, group := range nested {
		flat = append(flat, group...)
	}
	return flat
}
