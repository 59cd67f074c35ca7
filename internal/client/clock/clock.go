// Package clock converts timezone identifiers into display time strings.
//
// Besides real IANA zones it understands the sentinel "parallel", a
// fictional clock where the real day is compressed onto a 21-hour,
// 5-minute scale.
package clock

import (
	"fmt"
	"time"
)

// Parallel is the timezone sentinel of the fictional parallel-world city.
const Parallel = "parallel"

// Invalid is returned for unrecognized timezone identifiers. It is exactly
// five characters so layouts built around "HH:MM" never shift.
const Invalid = "--:--"

// Timezone display modes, mirroring the server's settings enum.
const (
	Mode24   = "24"
	Mode12   = "12"
	ModeBoth = "both"
)

// Format returns the zero-padded 24-hour "HH:MM" string for a timezone at
// the given instant. The parallel sentinel is derived from the *local* wall
// clock of at, not from any real zone. Unknown zones yield Invalid; the
// function never panics and always returns five characters.
func Format(tz string, at time.Time) string {
	if tz == Parallel {
		return parallelTime(at)
	}

	// LoadLocation maps "" to UTC and "Local" to the host zone. Neither
	// names a real place, so both count as unknown here.
	if tz == "" || tz == "Local" {
		return Invalid
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Invalid
	}
	return at.In(loc).Format("15:04")
}

// parallelTime maps local wall-clock time onto the 21:5 scale. The floor
// truncation is part of the contract: 23:59 maps to 20:04, with visible
// discontinuities at rollovers.
func parallelTime(at time.Time) string {
	h := at.Hour() * 21 / 24
	m := at.Minute() * 5 / 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Display renders a timezone's time honoring the display mode. The parallel
// clock has no meridiem and always renders 24-hour style.
func Display(tz string, at time.Time, mode string) string {
	base := Format(tz, at)
	if base == Invalid || tz == Parallel || mode == Mode24 || mode == "" {
		return base
	}

	loc, _ := time.LoadLocation(tz) // base != Invalid, so tz loads
	local := at.In(loc)

	switch mode {
	case Mode12:
		return local.Format("3:04 PM")
	case ModeBoth:
		return base + " (" + local.Format("3:04 PM") + ")"
	default:
		return base
	}
}
