package rekap

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/validator"
)

func TestRangeRequestValidate(t *testing.T) {
	cases := []struct {
		name       string
		req        RangeRequest
		wantFields []string
	}{
		{
			name: "valid range",
			req:  RangeRequest{StartDate: "2024-03-04", EndDate: "2024-03-08"},
		},
		{
			name: "single day",
			req:  RangeRequest{StartDate: "2024-03-04", EndDate: "2024-03-04"},
		},
		{
			name:       "missing both dates",
			req:        RangeRequest{},
			wantFields: []string{"start_date", "end_date"},
		},
		{
			name:       "missing end date",
			req:        RangeRequest{StartDate: "2024-03-04"},
			wantFields: []string{"end_date"},
		},
		{
			name:       "malformed start date",
			req:        RangeRequest{StartDate: "04/03/2024", EndDate: "2024-03-08"},
			wantFields: []string{"start_date"},
		},
		{
			name:       "end before start",
			req:        RangeRequest{StartDate: "2024-03-08", EndDate: "2024-03-04"},
			wantFields: []string{"end_date"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if len(c.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			got := errs.ToMap()
			for _, field := range c.wantFields {
				assert.Contains(t, got, field)
			}
			assert.Len(t, got, len(c.wantFields))
		})
	}
}

func TestRangeRequestParsedBounds(t *testing.T) {
	req := RangeRequest{StartDate: "2024-03-04", EndDate: "2024-03-08"}
	require.NoError(t, req.Validate())

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), req.Start())
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), req.End())
}
