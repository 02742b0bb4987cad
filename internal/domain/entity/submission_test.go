package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionFromDocCurrentShape(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	sub := SubmissionFromDoc("abc123", map[string]any{
		"status":       "pending",
		"referenceNo":  "REF-0042",
		"shopId":       "shop-1",
		"shopName":     "Kuzey Electronics",
		"categoryPath": "electronics/phones",
		"createdAt":    createdAt,
		"productName":  "Phone X",
	})

	assert.Equal(t, "abc123", sub.ID)
	assert.Equal(t, StatusPending, sub.Status)
	assert.Equal(t, "REF-0042", sub.ReferenceNo)
	assert.Equal(t, "shop-1", sub.ShopID)
	assert.Equal(t, "Kuzey Electronics", sub.OwnerName)
	assert.Equal(t, "electronics/phones", sub.CategoryPath)
	assert.Equal(t, createdAt, sub.CreatedAt)
	assert.True(t, sub.Pending())
}

func TestSubmissionFromDocLegacyShape(t *testing.T) {
	t.Parallel()

	sub := SubmissionFromDoc("legacy1", map[string]any{
		"referenceNumber": "REF-0001",
		"shopID":          "shop-9",
		"ownerName":       "Ali",
		"categories":      []any{"electronics"},
		"subcategory":     "phones",
		"submittedAt":     float64(1700000000000),
	})

	// Absent status means the submission is still pending.
	assert.Equal(t, StatusPending, sub.Status)
	assert.Equal(t, "REF-0001", sub.ReferenceNo)
	assert.Equal(t, "shop-9", sub.ShopID)
	assert.Equal(t, "Ali", sub.OwnerName)
	assert.Equal(t, "electronics/phones", sub.CategoryPath)
	assert.Equal(t, time.UnixMilli(1700000000000), sub.CreatedAt)
}

func TestSubmissionFromDocPrefersCurrentKeys(t *testing.T) {
	t.Parallel()

	sub := SubmissionFromDoc("s1", map[string]any{
		"referenceNo":     "NEW",
		"referenceNumber": "OLD",
		"shopName":        "Shop Display",
		"ownerName":       "Applicant",
	})

	assert.Equal(t, "NEW", sub.ReferenceNo)
	assert.Equal(t, "Shop Display", sub.OwnerName)
}

func TestSubmissionTargetID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		referenceNo string
		expected    string
	}{
		{name: "reference number wins", referenceNo: "REF-7", expected: "REF-7"},
		{name: "whitespace reference falls back to key", referenceNo: "   ", expected: "doc-1"},
		{name: "empty reference falls back to key", referenceNo: "", expected: "doc-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub := &Submission{ID: "doc-1", ReferenceNo: tt.referenceNo}
			assert.Equal(t, tt.expected, sub.TargetID())
		})
	}
}

func TestSubmissionStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusDuplicate.Terminal())

	// Unknown statuses stay actionable rather than silently locking the record.
	assert.False(t, SubmissionStatus("weird").Terminal())
}
