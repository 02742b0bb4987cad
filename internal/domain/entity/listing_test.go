package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildListingPayload(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	sub := &Submission{
		ID: "doc-1",
		Fields: map[string]any{
			"productName":     "Phone X",
			"price":           499.0,
			"description":     nil, // explicit null must survive promotion
			"status":          "pending",
			"referenceNo":     "REF-1",
			"referenceNumber": "REF-1",
			"phone":           "+90 555",
			"ibanNo":          "TR00",
			"bankName":        "Bank",
			"address":         "somewhere",
			"needsSync":       false,
			"lastSyncedAt":    time.Unix(0, 0),
			"reviewedAt":      time.Unix(0, 0),
			"rejectionReason": "old",
			"createdAt":       time.Unix(0, 0),
		},
	}

	payload := BuildListingPayload(sub, "REF-1", now)

	// Surviving attributes.
	assert.Equal(t, "Phone X", payload["productName"])
	assert.Equal(t, 499.0, payload["price"])
	val, present := payload["description"]
	assert.True(t, present)
	assert.Nil(t, val)

	// Applicant-only and moderation fields never reach the live record.
	for _, dropped := range []string{
		"status", "referenceNo", "referenceNumber", "phone", "ibanNo",
		"bankName", "address", "lastSyncedAt", "reviewedAt", "rejectionReason",
	} {
		_, ok := payload[dropped]
		assert.False(t, ok, "field %q should be dropped", dropped)
	}

	// Overlaid metadata.
	assert.Equal(t, "REF-1", payload["id"])
	assert.Equal(t, now, payload["createdAt"])
	assert.Equal(t, now, payload["updatedAt"])
	assert.Equal(t, true, payload["needsSync"])
	assert.Equal(t, []string{}, payload["relatedListingIds"])
}

func TestBuildListingPayloadDoesNotMutateSubmission(t *testing.T) {
	t.Parallel()

	sub := &Submission{
		ID: "doc-1",
		Fields: map[string]any{
			"productName": "Phone X",
			"status":      "pending",
		},
	}

	_ = BuildListingPayload(sub, "doc-1", time.Now())

	assert.Equal(t, "pending", sub.Fields["status"])
	assert.Len(t, sub.Fields, 2)
}
