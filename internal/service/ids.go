package service

import (
	"fmt"
	"time"
)

// timestampID returns "<prefix>-<unix ms>", moving forward one millisecond
// at a time past ids that are already taken
func timestampID(prefix string, now time.Time, taken func(id string) bool) string {
	ms := now.UnixMilli()
	for {
		id := fmt.Sprintf("%s-%d", prefix, ms)
		if !taken(id) {
			return id
		}
		ms++
	}
}
