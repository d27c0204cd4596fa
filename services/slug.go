package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// generateSlug derives a lowercase, URL-safe identifier from a title. The
// suffix combines a base-36 millisecond timestamp with a random component, so
// near-simultaneous submissions of the same title still produce distinct
// slugs without a database round trip. Uniqueness stays probabilistic here;
// the unique index on articles.slug is the hard backstop and an insert
// conflict is surfaced to the caller.
func generateSlug(title string) string {
	suffix := strconv.FormatInt(time.Now().UnixMilli(), 36) + randomSuffix()
	return slug.Make(title + "-" + suffix)
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
