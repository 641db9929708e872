package request

import (
	"fmt"
	"strings"
	"time"

	"github.com/ndewijer/Business-Ledger-Backend/internal/apperrors"
)

// PreviousAuto asks for the window of equal length immediately before the current period.
const PreviousAuto = "auto"

// PeriodQuery carries the reporting window of a financial statements request.
// Empty dates are defaulted by the financial service.
type PeriodQuery struct {
	StartDate         string
	EndDate           string
	PreviousStartDate string
	PreviousEndDate   string
	AutoPrevious      bool
}

// HasPrevious reports whether a comparison period was requested.
func (q PeriodQuery) HasPrevious() bool {
	return q.AutoPrevious || q.PreviousStartDate != "" || q.PreviousEndDate != ""
}

// ParsePeriodQuery validates the raw period query parameters.
//
// Validation rules:
//   - all dates: YYYY-MM-DD when present
//   - previous: empty or "auto"
//   - previousStartDate/previousEndDate: both or neither, and not combined with previous=auto
//
// Returns an error wrapping apperrors.ErrInvalidDate or apperrors.ErrInvalidDateRange.
func ParsePeriodQuery(startDate, endDate, previousStartDate, previousEndDate, previous string) (PeriodQuery, error) {
	q := PeriodQuery{
		StartDate:         strings.TrimSpace(startDate),
		EndDate:           strings.TrimSpace(endDate),
		PreviousStartDate: strings.TrimSpace(previousStartDate),
		PreviousEndDate:   strings.TrimSpace(previousEndDate),
	}

	dates := []struct{ name, value string }{
		{"startDate", q.StartDate},
		{"endDate", q.EndDate},
		{"previousStartDate", q.PreviousStartDate},
		{"previousEndDate", q.PreviousEndDate},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d.value); err != nil {
			return PeriodQuery{}, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", apperrors.ErrInvalidDate, d.name, d.value)
		}
	}

	switch strings.ToLower(strings.TrimSpace(previous)) {
	case "":
	case PreviousAuto:
		q.AutoPrevious = true
	default:
		return PeriodQuery{}, fmt.Errorf("%w: previous must be %q", apperrors.ErrInvalidDateRange, PreviousAuto)
	}

	explicit := q.PreviousStartDate != "" || q.PreviousEndDate != ""
	if explicit && (q.PreviousStartDate == "" || q.PreviousEndDate == "") {
		return PeriodQuery{}, fmt.Errorf("%w: previousStartDate and previousEndDate must be given together", apperrors.ErrInvalidDateRange)
	}
	if explicit && q.AutoPrevious {
		return PeriodQuery{}, fmt.Errorf("%w: previous=auto cannot be combined with explicit previous dates", apperrors.ErrInvalidDateRange)
	}

	return q, nil
}
