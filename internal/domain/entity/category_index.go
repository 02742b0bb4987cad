package entity

import (
	"strings"
	"time"
	"unicode"
)

// IndexOwner is one "{owner, display name}" pair in a category index entry.
type IndexOwner struct {
	OwnerID   string `firestore:"ownerId" json:"ownerId"`
	OwnerName string `firestore:"ownerName" json:"ownerName"`
}

// CategoryPath is one normalized category lookup key together with its depth
// (1 = category, 2 = subcategory, 3 = subsubcategory).
type CategoryPath struct {
	Key      string
	Level    int
	Segments []string
}

// CategoryIndexEntry is the denormalized "who sells in this category" lookup,
// keyed by the normalized path string.
type CategoryIndexEntry struct {
	Path        string       `firestore:"path" json:"path"`
	Level       int          `firestore:"level" json:"level"`
	Owners      []IndexOwner `firestore:"owners" json:"owners"`
	LastUpdated time.Time    `firestore:"lastUpdated" json:"lastUpdated"`
}

// NormalizeSegment capitalizes the first rune of a category segment and
// lowercases the rest, so "running shoes" and "RUNNING SHOES" share one entry.
func NormalizeSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return ""
	}

	runes := []rune(strings.ToLower(segment))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// AncestorPaths expands a slash-separated category path into every ancestor
// lookup key, most specific first: the full path, the path minus its leaf,
// and the path minus two leaves. Empty segments are skipped entirely, so no
// index entry is ever created for them.
func AncestorPaths(categoryPath string) []CategoryPath {
	var segments []string
	for _, raw := range strings.Split(categoryPath, "/") {
		if normalized := NormalizeSegment(raw); normalized != "" {
			segments = append(segments, normalized)
		}
	}

	paths := make([]CategoryPath, 0, len(segments))
	for depth := len(segments); depth >= 1; depth-- {
		prefix := segments[:depth]
		paths = append(paths, CategoryPath{
			Key:      strings.Join(prefix, "/"),
			Level:    depth,
			Segments: append([]string(nil), prefix...),
		})
	}

	return paths
}
