package store

import (
	"github.com/CrestNiraj12/terminalreels/diff"
	"github.com/CrestNiraj12/terminalreels/domain"
)

func videoKey(v domain.Video) string     { return v.ID }
func commentKey(c domain.Comment) string { return c.ID }

// replaceByID locates the first element whose key is id and substitutes
// fn(element) in a copy of items. items is returned as is when id is absent.
func replaceByID[T any](items []T, id string, key func(T) string, fn func(T) T) ([]T, bool) {
	for i, it := range items {
		if key(it) == id {
			return diff.Patch(items, i, fn(it))
		}
	}
	return items, false
}
