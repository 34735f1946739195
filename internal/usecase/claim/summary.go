package claim

import (
	"fmt"
	"time"
)

// SummaryDate computes the quarterly settlement date for a submit date:
// claims from months 1-3 settle on Apr 15 of the same year, 4-6 on
// Jul 15, 7-9 on Oct 15 and 10-12 on Jan 15 of the following year.
// Recomputed and overwritten on every save.
func SummaryDate(submitDate string) (string, error) {
	t, err := time.Parse("2006-01-02", submitDate)
	if err != nil {
		return "", fmt.Errorf("invalid submit date %q: %w", submitDate, err)
	}
	switch {
	case t.Month() <= 3:
		return fmt.Sprintf("%d-04-15", t.Year()), nil
	case t.Month() <= 6:
		return fmt.Sprintf("%d-07-15", t.Year()), nil
	case t.Month() <= 9:
		return fmt.Sprintf("%d-10-15", t.Year()), nil
	default:
		return fmt.Sprintf("%d-01-15", t.Year()+1), nil
	}
}
