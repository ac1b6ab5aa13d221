package cache

import "fmt"

func DedupKey(fingerprint string) string {
	return fmt.Sprintf("dedup:fp:%s", fingerprint)
}

func RateLimitKey(source string) string {
	return fmt.Sprintf("ratelimit:%s", source)
}
