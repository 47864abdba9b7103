package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	durationRe   = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
	calendarUnit = regexp.MustCompile(`^P(?:\d+Y)?(?:\d+M)?(?:\d+W)?`)
)

// IsISODuration reports whether s is written in ISO-8601 duration form, that
// is it starts with the P designator. It does not validate the rest.
func IsISODuration(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && (s[0] == 'P' || s[0] == 'p')
}

// ParseDuration converts an ISO-8601 duration such as "PT5M" or "P1DT2H"
// into a time.Duration. Days are taken as 24 hours. Values beyond
// MaxTimerDuration fail with ErrDurationTooLong.
func ParseDuration(iso string) (time.Duration, error) {
	iso = strings.ToUpper(strings.TrimSpace(iso))

	m := durationRe.FindStringSubmatch(iso)
	if m == nil || iso == "P" || strings.HasSuffix(iso, "T") {
		if loc := calendarUnit.FindString(iso); len(loc) > 1 {
			return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnits, iso)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
	}

	var d time.Duration
	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute}
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("%w: %q", ErrDurationTooLong, iso)
			}
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
		}
		// Anything past the timer limit is rejected before it can overflow.
		if n > int64((MaxTimerDuration-d)/unit) {
			return 0, fmt.Errorf("%w: %q", ErrDurationTooLong, iso)
		}
		d += time.Duration(n) * unit
	}
	if m[4] != "" {
		secs, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
		}
		if secs > (MaxTimerDuration - d).Seconds() {
			return 0, fmt.Errorf("%w: %q", ErrDurationTooLong, iso)
		}
		d += time.Duration(secs * float64(time.Second))
	}
	return d, nil
}

// FormatDuration renders d as an ISO-8601 time duration, e.g. "PT1H30M".
// Sub-second precision is dropped.
func FormatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d <= 0 {
		return "PT0S"
	}

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	var b strings.Builder
	b.WriteString("PT")
	if h > 0 {
		fmt.Fprintf(&b, "%dH", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	if s > 0 {
		fmt.Fprintf(&b, "%dS", s)
	}
	return b.String()
}

// ValidateTimerDuration checks d against the timer service limits.
func ValidateTimerDuration(d time.Duration) error {
	switch {
	case d < time.Second:
		return ErrDurationNotSet
	case d > MaxTimerDuration:
		return fmt.Errorf("%w: %s", ErrDurationTooLong, d)
	}
	return nil
}

// NormalizeTimerDuration parses iso, checks it against the timer limits and
// returns its canonical form.
func NormalizeTimerDuration(iso string) (string, error) {
	d, err := ParseDuration(iso)
	if err != nil {
		return "", err
	}
	if err := ValidateTimerDuration(d); err != nil {
		return "", err
	}
	return FormatDuration(d), nil
}
