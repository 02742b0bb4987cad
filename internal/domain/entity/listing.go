package entity

import "time"

// ListingCollection names one of the live listing collections.
type ListingCollection string

const (
	CollectionShopProducts ListingCollection = "shop_products"
	CollectionProducts     ListingCollection = "products"
	CollectionRestaurants  ListingCollection = "restaurants"
	CollectionBanners      ListingCollection = "market_banners"
)

// Listing is the live, publicly visible record created by promoting a
// submission. Only the fields the admin service itself reads are typed;
// the promoted document additionally carries every surviving submission field.
type Listing struct {
	ID           string    `firestore:"id" json:"id"`
	Name         string    `firestore:"productName" json:"name"`
	ShopID       string    `firestore:"shopId" json:"shopId"`
	OwnerName    string    `firestore:"shopName" json:"ownerName"`
	CategoryPath string    `firestore:"categoryPath" json:"categoryPath"`
	NeedsSync    bool      `firestore:"needsSync" json:"needsSync"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// promotionDroppedFields are removed from the payload when a submission is
// promoted: the submission's own key, the duplicated reference number, the
// applicant-only contact and payout fields, the moderation status, and any
// prior sync metadata. Explicit nulls elsewhere in the document survive.
var promotionDroppedFields = []string{
	"id",
	"referenceNo",
	"referenceNumber",
	"status",
	"phone",
	"phoneNumber",
	"address",
	"applicantAddress",
	"ibanNo",
	"bankName",
	"accountHolderName",
	"needsSync",
	"lastSyncedAt",
	"updatedAt",
	"createdAt",
	"reviewedAt",
	"rejectionReason",
}

// BuildListingPayload shapes the promoted document from a submission: a
// shallow copy of every submission field, minus the dropped set, overlaid
// with the target key, fresh timestamps, the external-sync flag and an empty
// related-listings list.
func BuildListingPayload(sub *Submission, targetID string, now time.Time) map[string]any {
	payload := make(map[string]any, len(sub.Fields)+5)
	for key, value := range sub.Fields {
		payload[key] = value
	}
	for _, key := range promotionDroppedFields {
		delete(payload, key)
	}

	payload["id"] = targetID
	payload["createdAt"] = now
	payload["updatedAt"] = now
	payload["needsSync"] = true
	payload["relatedListingIds"] = []string{}

	return payload
}
