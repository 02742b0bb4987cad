package entity

// ReviewQueue describes one moderation queue: where pending submissions live
// and which live collections approved records are promoted into. The same
// decision flow serves every queue.
type ReviewQueue struct {
	Name                 string
	Submissions          string // submission collection
	OrgCollection        ListingCollection
	IndividualCollection ListingCollection
	// IndexEnabled controls the best-effort category index update after an
	// organization-owned promotion.
	IndexEnabled bool
}

// TargetCollection selects the live collection for a submission: the
// organization-owned collection when the submission carries a shop linkage,
// the individual-owned collection otherwise.
func (q ReviewQueue) TargetCollection(sub *Submission) ListingCollection {
	if sub.ShopID != "" {
		return q.OrgCollection
	}

	return q.IndividualCollection
}

// Queues are the built-in moderation queues of the marketplace.
var Queues = []ReviewQueue{
	{
		Name:                 "products",
		Submissions:          "product_applications",
		OrgCollection:        CollectionShopProducts,
		IndividualCollection: CollectionProducts,
		IndexEnabled:         true,
	},
	{
		Name:                 "restaurants",
		Submissions:          "restaurant_applications",
		OrgCollection:        CollectionRestaurants,
		IndividualCollection: CollectionRestaurants,
	},
	{
		Name:                 "banners",
		Submissions:          "banner_applications",
		OrgCollection:        CollectionBanners,
		IndividualCollection: CollectionBanners,
	},
}

// QueueByName looks up a built-in queue.
func QueueByName(name string) (ReviewQueue, bool) {
	for _, q := range Queues {
		if q.Name == name {
			return q, true
		}
	}

	return ReviewQueue{}, false
}
