package time

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a time.Duration that decodes from JSON strings like "30s" or "15m".
// Bare JSON numbers are read as seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode duration: %w", err)
	}

	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", v, err)
		}
		d.Duration = parsed
	case float64:
		d.Duration = time.Duration(v * float64(time.Second))
	default:
		return fmt.Errorf("invalid duration: %s", b)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalText lets a Duration be set from an environment variable.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}
