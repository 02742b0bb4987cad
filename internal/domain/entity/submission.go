// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// SubmissionStatus is the moderation state of a submission.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusApproved  SubmissionStatus = "approved"
	StatusRejected  SubmissionStatus = "rejected"
	StatusDuplicate SubmissionStatus = "duplicate"
)

// Terminal reports whether the status permits no further transitions.
func (s SubmissionStatus) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusDuplicate:
		return true
	default:
		return false
	}
}

// Submission is a proposed listing awaiting moderation. The typed fields are
// resolved from the raw document; Fields keeps the full document so promotion
// can carry every attribute the storefront already expects.
type Submission struct {
	ID           string           `json:"id"`
	Status       SubmissionStatus `json:"status"`
	ReferenceNo  string           `json:"referenceNo"`
	ShopID       string           `json:"shopId"`       // shop linkage; empty means individually owned
	OwnerName    string           `json:"ownerName"`    // display name of the shop or applicant
	CategoryPath string           `json:"categoryPath"` // slash-separated, e.g. "electronics/phones"
	CreatedAt    time.Time        `json:"createdAt"`
	Fields       map[string]any   `json:"fields"`
}

// Pending reports whether the submission can still be approved or rejected.
func (s *Submission) Pending() bool {
	return !s.Status.Terminal()
}

// TargetID is the document key the promoted listing will be written under:
// the human-facing reference number when present, the submission key otherwise.
func (s *Submission) TargetID() string {
	if ref := strings.TrimSpace(s.ReferenceNo); ref != "" {
		return ref
	}

	return s.ID
}

// SubmissionFromDoc resolves a raw submission document into a Submission.
// It is the single place that understands both the current and the legacy
// document shapes: old records use "referenceNumber" instead of "referenceNo",
// plural "categories" instead of "category", and may lack the status field
// entirely (absence means pending).
func SubmissionFromDoc(id string, data map[string]any) *Submission {
	sub := &Submission{
		ID:     id,
		Fields: data,
	}

	status := SubmissionStatus(docString(data, "status"))
	if status == "" {
		status = StatusPending
	}
	sub.Status = status

	sub.ReferenceNo = docString(data, "referenceNo", "referenceNumber")
	sub.ShopID = docString(data, "shopId", "shopID")
	sub.OwnerName = docString(data, "shopName", "ownerName")
	sub.CategoryPath = resolveCategoryPath(data)
	sub.CreatedAt = docTime(data, "createdAt", "submittedAt")

	return sub
}

// resolveCategoryPath builds the slash-separated category path from whichever
// shape the document carries: a ready-made "categoryPath", or the
// category/subcategory/subsubcategory triple (singular or plural keys).
func resolveCategoryPath(data map[string]any) string {
	if path := docString(data, "categoryPath"); path != "" {
		return path
	}

	segments := make([]string, 0, 3)
	for _, keys := range [][]string{
		{"category", "categories"},
		{"subcategory", "subCategory", "subcategories"},
		{"subsubcategory", "subSubCategory", "subsubcategories"},
	} {
		if segment := docString(data, keys...); segment != "" {
			segments = append(segments, segment)
		}
	}

	return strings.Join(segments, "/")
}

// docString returns the first present, non-empty string value among keys.
// A plural collection value falls back to its first element.
func docString(data map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := data[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && s != "" {
					return s
				}
			}
		case []string:
			if len(v) > 0 && v[0] != "" {
				return v[0]
			}
		}
	}

	return ""
}

// docTime returns the first present timestamp among keys. Legacy documents
// store epoch milliseconds instead of native timestamps.
func docTime(data map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		switch v := data[key].(type) {
		case time.Time:
			return v
		case int64:
			return time.UnixMilli(v)
		case float64:
			return time.UnixMilli(int64(v))
		}
	}

	return time.Time{}
}
