package tag

import (
	"strings"
	"time"
)

// Tag names are stored lower-cased so uniqueness is case-insensitive.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"tag_id"`
	Name      string    `gorm:"size:64;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type TagInput struct {
	Name string `json:"name" binding:"required,max=64" example:"iot"`
}

func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeAll lower-cases, trims and de-duplicates names, keeping first-seen order.
func NormalizeAll(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = Normalize(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
