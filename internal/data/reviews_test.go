// internal/data/reviews_test.go
package data

import (
	"strings"
	"testing"

	"github.com/aoideee/book-review-service/internal/validator"
)

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name      string
		review    Review
		wantField string // field expected to fail; empty means the review is valid
	}{
		{
			name:   "valid",
			review: Review{BookID: 1, ReviewerName: "Ada", Rating: 5, Comment: "Loved it."},
		},
		{
			name:   "lowest allowed rating",
			review: Review{BookID: 1, ReviewerName: "Ada", Rating: 1},
		},
		{
			name:      "missing reviewer name",
			review:    Review{BookID: 1, Rating: 3},
			wantField: "reviewer_name",
		},
		{
			name:      "reviewer name too long",
			review:    Review{BookID: 1, ReviewerName: strings.Repeat("x", 256), Rating: 3},
			wantField: "reviewer_name",
		},
		{
			name:      "zero rating",
			review:    Review{BookID: 1, ReviewerName: "Ada"},
			wantField: "rating",
		},
		{
			name:      "rating above five",
			review:    Review{BookID: 1, ReviewerName: "Ada", Rating: 6},
			wantField: "rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateReview(v, &tt.review)

			if tt.wantField == "" {
				if !v.Valid() {
					t.Fatalf("expected no validation errors, got %v", v.Errors)
				}
				return
			}
			if v.Valid() {
				t.Fatalf("expected a validation error for %q, got none", tt.wantField)
			}
			if _, ok := v.Errors[tt.wantField]; !ok {
				t.Errorf("expected an error keyed on %q, got %v", tt.wantField, v.Errors)
			}
		})
	}
}
