package event

import (
	"net/url"
	"path"
	"regexp"
)

// Ignore patterns compiled once at package init. They match the basename of
// the request path, covering the known non-actionable requests browsers make
// on their own. Filtering these before fingerprinting avoids spending
// dedup-store and inference quota on junk traffic.
var ignorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^favicon\.\w+$`),
	regexp.MustCompile(`^robots\.txt$`),
	regexp.MustCompile(`^apple-[\w-]+\.png$`),
}

// ShouldIgnore reports whether the request URL matches a known-junk pattern.
// An empty or unparseable URL is treated as non-matching.
func ShouldIgnore(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	}

	base := path.Base(p)
	for _, re := range ignorePatterns {
		if re.MatchString(base) {
			return true
		}
	}
	return false
}
