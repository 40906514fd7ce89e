package event

import (
	"regexp"
	"strings"
)

const (
	// maxSlugLen caps the slug body before the ID suffix is appended.
	maxSlugLen = 90

	// idSuffixLen is how many trailing characters of the event ID are
	// appended to keep same-named shows on different dates distinct.
	idSuffixLen = 6
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify builds a URL-safe identifier from an event's name, venue and
// local date, suffixed with the tail of the event ID. The result is
// deterministic: the same inputs always produce the same slug, so re-runs
// on unchanged upstream data keep URLs stable.
func Slugify(name, venue, localDate, id string) string {
	slug := strings.ToLower(strings.TrimSpace(name + "-" + venue + "-" + localDate))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	if slug == "" {
		slug = "event"
	}

	if id != "" {
		suffix := id
		if len(suffix) > idSuffixLen {
			suffix = suffix[len(suffix)-idSuffixLen:]
		}
		slug = slug + "-" + suffix
	}

	return slug
}
