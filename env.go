package progress

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envFlag parses boolean-ish environment variables (y/n, yes/no, 1/0,
// true/false, on/off). ok is false when the variable is unset or holds an
// unknown value.
func envFlag(name string) (value, ok bool) {
	raw, present := os.LookupEnv(name)
	if !present {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "1", "true", "on":
		return true, true
	case "n", "no", "0", "false", "off":
		return false, true
	}
	return false, false
}

// envMinPollInterval reads PROGRESS_MINIMUM_UPDATE_INTERVAL, accepting
// either a Go duration string ("250ms") or a plain number of seconds
// ("0.25"). Unset or unparsable values return zero.
func envMinPollInterval() time.Duration {
	raw := strings.TrimSpace(os.Getenv("PROGRESS_MINIMUM_UPDATE_INTERVAL"))
	if raw == "" {
		return 0
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 {
		return time.Duration(f * float64(time.Second))
	}
	return 0
}
