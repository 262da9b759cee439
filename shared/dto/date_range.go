package dto

import (
	"fmt"
	"net/http"
	"time"

	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

// DateRange is a half-open calendar interval [From, To) taken from the
// date_from/date_to query parameters. Ordering of the bounds is not checked
// here; that is the availability engine's contract.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FromRequest reads date_from/date_to from the request query. It reports
// whether a range was supplied at all; supplying exactly one bound is
// rejected before anything reaches the engine.
func (d *DateRange) FromRequest(r *http.Request) (provided bool, err error) {
	query := r.URL.Query()

	from := query.Get(constant.RequestParamDateFrom)
	to := query.Get(constant.RequestParamDateTo)

	if from == constant.Empty && to == constant.Empty {
		return false, nil
	}

	if from == constant.Empty || to == constant.Empty {
		return false, failure.PartialDateRange
	}

	d.From, err = timezone.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return false, failure.UnprocessableEntity(fmt.Sprintf("invalid date_from: %q, expected YYYY-MM-DD", from)) //nolint:wrapcheck
	}

	d.To, err = timezone.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return false, failure.UnprocessableEntity(fmt.Sprintf("invalid date_to: %q, expected YYYY-MM-DD", to)) //nolint:wrapcheck
	}

	return true, nil
}
