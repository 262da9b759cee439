package dto_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"lodge/shared/constant"
	"lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/model"
	"lodge/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "location",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "location",
				SortDir: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t, tt.queryParams)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestDateRange_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		queryParams  map[string]string
		wantProvided bool
		wantErr      bool
		wantCode     int
	}{
		{
			name:         "no range supplied",
			queryParams:  map[string]string{},
			wantProvided: false,
		},
		{
			name: "full range supplied",
			queryParams: map[string]string{
				"date_from": "2026-03-05",
				"date_to":   "2026-03-08",
			},
			wantProvided: true,
		},
		{
			name: "only date_from supplied",
			queryParams: map[string]string{
				"date_from": "2026-03-05",
			},
			wantErr:  true,
			wantCode: 422,
		},
		{
			name: "only date_to supplied",
			queryParams: map[string]string{
				"date_to": "2026-03-08",
			},
			wantErr:  true,
			wantCode: 422,
		},
		{
			name: "malformed date_from",
			queryParams: map[string]string{
				"date_from": "03/05/2026",
				"date_to":   "2026-03-08",
			},
			wantErr:  true,
			wantCode: 422,
		},
		{
			name: "malformed date_to",
			queryParams: map[string]string{
				"date_from": "2026-03-05",
				"date_to":   "next week",
			},
			wantErr:  true,
			wantCode: 422,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t, tt.queryParams)

			dateRange := &dto.DateRange{}
			provided, err := dateRange.FromRequest(req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if code := failure.GetCode(err); code != tt.wantCode {
					t.Errorf("expected code %d, got %d", tt.wantCode, code)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if provided != tt.wantProvided {
				t.Errorf("expected provided to be %v, got %v", tt.wantProvided, provided)
			}

			if provided {
				if !dateRange.From.Before(dateRange.To) {
					t.Errorf("expected From %v to be before To %v", dateRange.From, dateRange.To)
				}
			}
		})
	}
}

func TestDateRange_PartialRangeError(t *testing.T) {
	req := newRequest(t, map[string]string{"date_from": "2026-03-05"})

	dateRange := &dto.DateRange{}
	_, err := dateRange.FromRequest(req)

	if !errors.Is(err, failure.PartialDateRange) {
		t.Errorf("expected PartialDateRange, got %v", err)
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func newRequest(t *testing.T, queryParams map[string]string) *http.Request {
	t.Helper()

	u, err := url.Parse("http://example.com/test")
	if err != nil {
		t.Fatalf("failed to parse URL: %v", err)
	}

	query := u.Query()
	for key, value := range queryParams {
		query.Set(key, value)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	return req
}
