// ABOUTME: Slug generation for website records
// ABOUTME: Produces URL-safe identifiers from titles with a timestamp uniqueness suffix

package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// maxBaseLength bounds the title-derived portion of a slug so URLs stay
// readable even for long product titles.
const maxBaseLength = 60

// Make derives a unique slug from a title and creation time. The title is
// lower-cased, runs of non-alphanumeric characters collapse to a single
// hyphen, and the creation timestamp is appended as the uniqueness suffix.
func Make(title string, createdAt time.Time) string {
	base := Normalize(title)
	if base == "" {
		base = "site"
	}
	return base + "-" + strconv.FormatInt(createdAt.Unix(), 10)
}

// Normalize returns the URL-safe form of a title without any suffix.
func Normalize(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) && r < 128 || '0' <= r && r <= '9' {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	s := strings.TrimRight(b.String(), "-")
	if len(s) > maxBaseLength {
		s = strings.TrimRight(s[:maxBaseLength], "-")
	}
	return s
}
