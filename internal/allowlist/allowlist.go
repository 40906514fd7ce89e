package allowlist

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/tgardener/metro-gigs/internal/logger"
)

// Allowlist is a set of permitted venue names. An empty set means no
// filtering is active: every venue is allowed.
type Allowlist map[string]struct{}

// Load reads a JSON array of venue names from path. A missing or
// unparseable file degrades to an empty allowlist rather than failing the
// run; a broken allowlist should never stop events from publishing.
func Load(path string) Allowlist {
	set := make(Allowlist)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Allowlist unreadable, filtering disabled", logger.Fields{
				"path":  path,
				"error": err.Error(),
			})
		}
		return set
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		logger.Warn("Allowlist malformed, filtering disabled", logger.Fields{
			"path":  path,
			"error": err.Error(),
		})
		return set
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}

	return set
}

// Allows reports whether a venue passes the filter. Every venue passes
// when the allowlist is empty.
func (a Allowlist) Allows(venue string) bool {
	if len(a) == 0 {
		return true
	}
	_, ok := a[venue]
	return ok
}

// Active reports whether filtering is in effect.
func (a Allowlist) Active() bool {
	return len(a) > 0
}
