// Package video resolves exercise demonstration links, falling back to a
// YouTube search URL when no curated link exists for an activity.
package video

import (
	"net/url"
	"strings"

	"github.com/vitaplan/vitaplan/internal/catalog"
)

const youtubeSearchBase = "https://www.youtube.com/results?search_query="

// Library maps normalized activity names to demonstration links.
type Library struct {
	refs map[string]string
}

// NewLibrary builds a library from catalog video references. Entries with
// an empty activity or URL are skipped; on duplicate activities the first
// entry wins.
func NewLibrary(refs []catalog.VideoRef) *Library {
	lib := &Library{refs: make(map[string]string, len(refs))}
	for _, ref := range refs {
		key := catalog.NormalizeName(ref.Activity)
		if key == "" || strings.TrimSpace(ref.URL) == "" {
			continue
		}
		if _, ok := lib.refs[key]; ok {
			continue
		}
		lib.refs[key] = strings.TrimSpace(ref.URL)
	}
	return lib
}

// EmptyLibrary returns a library with no curated links. Every Resolve
// call falls back to a search URL.
func EmptyLibrary() *Library {
	return &Library{refs: map[string]string{}}
}

// Len returns the number of curated links.
func (l *Library) Len() int {
	return len(l.refs)
}

// Resolve returns a demonstration link for an activity. Curated entries
// that are not absolute http(s) URLs are treated as search phrases, as is
// any activity with no entry at all, yielding a YouTube search URL. The
// result is never empty for a non-blank activity.
func (l *Library) Resolve(activity string) string {
	name := strings.TrimSpace(activity)
	if name == "" {
		return ""
	}

	if ref, ok := l.refs[catalog.NormalizeName(name)]; ok {
		if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
			return ref
		}
		return SearchURL(ref)
	}

	return SearchURL(name + " exercise tutorial")
}

// SearchURL builds a YouTube search link for a free-text phrase.
func SearchURL(phrase string) string {
	return youtubeSearchBase + url.QueryEscape(strings.TrimSpace(phrase))
}
