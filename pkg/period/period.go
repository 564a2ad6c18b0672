package period

import (
	"fmt"
	"time"

	"anoa.com/communityhub/pkg/apperror"
)

// Period is the recurring time window used by achievement criteria and
// leaderboard generation. Every component resolves windows through Range so
// the anchoring rule lives in exactly one place.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
	AllTime Period = "all_time"
)

func Parse(s string) (Period, error) {
	switch Period(s) {
	case Daily, Weekly, Monthly, Yearly, AllTime:
		return Period(s), nil
	}
	return "", fmt.Errorf("%w: unknown period %q", apperror.ErrInvalidInput, s)
}

func (p Period) Valid() bool {
	_, err := Parse(string(p))
	return err == nil
}

// Range resolves the period to a concrete [start, end) window anchored at now.
// Weekly windows start on Sunday. AllTime spans from the Unix epoch.
func (p Period) Range(now time.Time) (time.Time, time.Time, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case Daily:
		return startOfDay, now, nil
	case Weekly:
		return startOfDay.AddDate(0, 0, -int(now.Weekday())), now, nil
	case Monthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now, nil
	case Yearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now, nil
	case AllTime:
		return time.Unix(0, 0), now, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown period %q", apperror.ErrInvalidInput, p)
}
