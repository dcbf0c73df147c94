// Package posttime resolves the date and time a user picks in their own
// timezone into the absolute instant Slack expects as post_at.
//
// Timezones are plain UTC offsets in seconds, as Slack reports them in a
// user's tz_offset. There is no DST handling and no zone name lookup.
package posttime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain"
)

// DisplayLayout is how scheduled times are shown to users.
const DisplayLayout = "2006-01-02 15:04:05-07:00"

// Resolver converts between picker values and instants using a clock.
type Resolver struct {
	now func() time.Time
}

// New returns a Resolver backed by the wall clock.
func New() *Resolver {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Resolver that reads the current time from now.
func NewWithClock(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

// Location returns a fixed-offset zone for offsetSeconds east of UTC.
func Location(offsetSeconds int) *time.Location {
	return time.FixedZone(zoneName(offsetSeconds), offsetSeconds)
}

func zoneName(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offsetSeconds/3600, offsetSeconds%3600/60)
}

// Now returns the current time in the given offset.
func (r *Resolver) Now(offsetSeconds int) time.Time {
	return r.now().In(Location(offsetSeconds))
}

// SuggestedDate returns the local date minutesAhead from now as YYYY-M-D.
// Month and day are not zero padded.
func (r *Resolver) SuggestedDate(offsetSeconds, minutesAhead int) string {
	t := r.Now(offsetSeconds).Add(time.Duration(minutesAhead) * time.Minute)
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// SuggestedTime returns the local time minutesAhead from now as HH:MM.
func (r *Resolver) SuggestedTime(offsetSeconds, minutesAhead int) string {
	t := r.Now(offsetSeconds).Add(time.Duration(minutesAhead) * time.Minute)
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// PostAt builds the instant for a year-month-day date and an hour:minute
// time entered in the given offset.
func PostAt(offsetSeconds int, date, clock string) (time.Time, error) {
	ymd, err := splitInts(date, "-", 3)
	if err != nil {
		return time.Time{}, domain.NewValidationError(domain.BlockDate, domain.MsgInvalidDate)
	}
	hm, err := splitInts(clock, ":", 2)
	if err != nil {
		return time.Time{}, domain.NewValidationError(domain.BlockTime, domain.MsgInvalidTime)
	}

	year, month, day := ymd[0], ymd[1], ymd[2]
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return time.Time{}, domain.NewValidationError(domain.BlockDate, domain.MsgInvalidDate)
	}
	hour, minute := hm[0], hm[1]
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, domain.NewValidationError(domain.BlockTime, domain.MsgInvalidTime)
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, Location(offsetSeconds)), nil
}

// Validate resolves the picked date and time and rejects anything that is
// not strictly after now. The rejection is attached to both the date and
// the time field.
func (r *Resolver) Validate(offsetSeconds int, date, clock string) (time.Time, error) {
	postAt, err := PostAt(offsetSeconds, date, clock)
	if err != nil {
		return time.Time{}, err
	}

	if !postAt.After(r.Now(offsetSeconds)) {
		return time.Time{}, domain.NewValidationError(
			domain.BlockDate, domain.MsgFutureDate,
			domain.BlockTime, domain.MsgFutureTime,
		)
	}

	return postAt, nil
}

// Format renders a POSIX timestamp in the given offset for display.
func Format(postAt int64, offsetSeconds int) string {
	return time.Unix(postAt, 0).In(Location(offsetSeconds)).Format(DisplayLayout)
}

func splitInts(s, sep string, n int) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d parts in %q", n, s)
	}

	values := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		values[i] = v
	}
	return values, nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
