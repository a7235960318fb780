// Package purge resolves the purge_image age cutoff from its alternative
// request encodings into a single timestamp.
package purge

import (
	"fmt"
	"time"

	"github.com/seapath/cluster-vm/api/v1alpha1"
)

// AmbiguityError reports a purge specification that does not select
// exactly one encoding.
type AmbiguityError struct {
	// Reason describes which combination rule was broken.
	Reason string
}

func (e *AmbiguityError) Error() string {
	return "purge_spec argument error: " + e.Reason
}

// isoLayouts are the datetime shapes accepted for the iso8601 encoding,
// tried in order. Layouts with an offset come first so the offset is not
// misread as part of the seconds field.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// clockLayouts are the accepted time-of-day shapes, seconds optional.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// Resolve turns a purge specification into the cutoff timestamp.
//
// A nil spec, or one with no encoding set, resolves to no cutoff. When an
// encoding is present the result is the cutoff in local wall-clock time:
// zone offsets in the iso8601 encoding are parsed but discarded, matching
// how the cluster stores snapshot timestamps. The posix encoding counts
// milliseconds since the Unix epoch.
func Resolve(spec *v1alpha1.PurgeSpec) (*time.Time, error) {
	if spec == nil {
		return nil, nil
	}

	hasDate := spec.Date != ""
	hasTime := spec.Time != ""
	hasISO := spec.ISO8601 != ""
	hasPOSIX := spec.POSIX != nil

	if !hasDate && !hasTime && !hasISO && !hasPOSIX {
		return nil, nil
	}

	encodings := 0
	if hasDate || hasTime {
		encodings++
	}
	if hasISO {
		encodings++
	}
	if hasPOSIX {
		encodings++
	}
	if encodings > 1 {
		return nil, &AmbiguityError{Reason: "date/time, iso8601 and posix are mutually exclusive"}
	}
	if hasDate != hasTime {
		return nil, &AmbiguityError{Reason: "date and time must be set together"}
	}

	var cutoff time.Time
	switch {
	case hasDate:
		t, err := combineDateTime(spec.Date, spec.Time)
		if err != nil {
			return nil, err
		}
		cutoff = t
	case hasISO:
		t, err := parseISO8601(spec.ISO8601)
		if err != nil {
			return nil, err
		}
		cutoff = t
	case hasPOSIX:
		cutoff = time.UnixMilli(*spec.POSIX)
	}

	return &cutoff, nil
}

// combineDateTime builds a local timestamp from a YYYY-MM-DD date and an
// HH:MM or HH:MM:SS time of day.
func combineDateTime(date, clock string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid purge date %q: %w", date, err)
	}

	for _, layout := range clockLayouts {
		c, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.Local), nil
	}
	return time.Time{}, fmt.Errorf("invalid purge time %q: want HH:MM or HH:MM:SS", clock)
}

// parseISO8601 parses an ISO 8601 datetime and rebuilds it in local time,
// keeping the wall-clock fields and dropping any zone offset.
func parseISO8601(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		p, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(p.Year(), p.Month(), p.Day(), p.Hour(), p.Minute(), p.Second(), p.Nanosecond(), time.Local), nil
	}
	return time.Time{}, fmt.Errorf("invalid iso8601 datetime %q", value)
}
