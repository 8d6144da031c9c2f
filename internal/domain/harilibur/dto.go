package harilibur

import (
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

type CreateHariLiburRequest struct {
	HolidayName string `json:"holiday_name"`
	Type        int    `json:"type"`
	DateStart   string `json:"date_start"`
	DateEnd     string `json:"date_end"`
}

func (r *CreateHariLiburRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.HolidayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_name",
			Message: "holiday_name is required",
		})
	}

	var start, end time.Time
	var startOK, endOK bool
	if start, startOK = validator.IsValidDate(r.DateStart); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_start",
			Message: "date_start must be in YYYY-MM-DD format",
		})
	}
	if r.DateEnd != "" {
		if end, endOK = validator.IsValidDate(r.DateEnd); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "date_end",
				Message: "date_end must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_end",
			Message: "date_end must not be before date_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HariLiburResponse struct {
	ID          int64   `json:"id"`
	HolidayName string  `json:"holiday_name"`
	Type        int     `json:"type"`
	DateStart   string  `json:"date_start"`
	DateEnd     *string `json:"date_end"`
}
