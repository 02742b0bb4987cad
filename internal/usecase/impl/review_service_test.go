package impl

import (
	"context"
	"testing"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApprovePromotesOrgOwnedSubmission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	fx.store.putSubmission("sub-1", orgSubmissionDoc())

	fx.indexRepo.EXPECT().
		AddOwner(mock.Anything, mock.Anything, entity.IndexOwner{OwnerID: "shop-1", OwnerName: "Kuzey Electronics"}).
		Run(func(_ context.Context, paths []entity.CategoryPath, _ entity.IndexOwner) {
			require.Len(t, paths, 2)
			assert.Equal(t, "Electronics/Phones", paths[0].Key)
			assert.Equal(t, "Electronics", paths[1].Key)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishListingPromoted(mock.Anything, mock.AnythingOfType("*service.ListingPromotedEvent")).
		Run(func(_ context.Context, event *service.ListingPromotedEvent) {
			assert.Equal(t, "REF-100", event.ListingID)
			assert.Equal(t, string(entity.CollectionShopProducts), event.Collection)
			assert.Equal(t, "shop-1", event.ShopID)
		}).
		Return(nil)

	decision, err := fx.service.Approve(ctx, "products", "sub-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomePromoted, decision.Outcome)
	assert.Equal(t, "REF-100", decision.ListingID)
	assert.Equal(t, entity.CollectionShopProducts, decision.Collection)

	// The live record exists under the reference number, shaped for the storefront.
	listing, ok := fx.store.listing(entity.CollectionShopProducts, "REF-100")
	require.True(t, ok)
	assert.Equal(t, "Phone X", listing["productName"])
	assert.Equal(t, "REF-100", listing["id"])
	assert.Equal(t, true, listing["needsSync"])
	_, hasIban := listing["ibanNo"]
	assert.False(t, hasIban)
	_, hasPhone := listing["phone"]
	assert.False(t, hasPhone)

	// The submission flipped to approved with the promotion recorded.
	assert.Equal(t, "approved", fx.store.submissionStatus("sub-1"))
	assert.Equal(t, "REF-100", fx.store.submissions["sub-1"]["approvedRecordId"])
	assert.Equal(t, string(entity.CollectionShopProducts), fx.store.submissions["sub-1"]["approvedCollection"])
}

func TestApproveIndividualOwnedSkipsCategoryIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	// No shop linkage and no reference number: the submission key becomes the
	// listing key and the category index is left untouched.
	fx.store.putSubmission("abc123", map[string]any{
		"status":       "pending",
		"ownerName":    "Ayşe",
		"categoryPath": "home/furniture",
		"productName":  "Chair",
	})

	fx.publisher.EXPECT().
		PublishListingPromoted(mock.Anything, mock.Anything).
		Return(nil)

	decision, err := fx.service.Approve(ctx, "products", "abc123")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomePromoted, decision.Outcome)
	assert.Equal(t, "abc123", decision.ListingID)
	assert.Equal(t, entity.CollectionProducts, decision.Collection)

	_, ok := fx.store.listing(entity.CollectionProducts, "abc123")
	assert.True(t, ok)
}

func TestApproveIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	fx.store.putSubmission("sub-1", orgSubmissionDoc())
	fx.indexRepo.EXPECT().AddOwner(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishListingPromoted(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := fx.service.Approve(ctx, "products", "sub-1")
	require.NoError(t, err)

	// The second call hits the pending guard inside the transaction and
	// changes nothing.
	_, err = fx.service.Approve(ctx, "products", "sub-1")
	require.ErrorIs(t, err, domainerrors.ErrAlreadyProcessed)

	assert.Equal(t, "approved", fx.store.submissionStatus("sub-1"))
	assert.Len(t, fx.store.listings[entity.CollectionShopProducts], 1)
}

func TestApproveFlipsDuplicateWhenTargetExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	fx.store.putListing(entity.CollectionShopProducts, "REF-100", map[string]any{"productName": "Original"})
	fx.store.putSubmission("sub-2", orgSubmissionDoc())

	decision, err := fx.service.Approve(ctx, "products", "sub-2")
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeDuplicate, decision.Outcome)
	assert.Equal(t, "REF-100", decision.ListingID)

	// The previously promoted record is never clobbered.
	listing, ok := fx.store.listing(entity.CollectionShopProducts, "REF-100")
	require.True(t, ok)
	assert.Equal(t, "Original", listing["productName"])

	// The conflict lands on the submission.
	assert.Equal(t, "duplicate", fx.store.submissionStatus("sub-2"))
	assert.Equal(t, "REF-100", fx.store.submissions["sub-2"]["existingRecordId"])
}

func TestRejectUsesConfiguredDefaultReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	fx.store.putSubmission("sub-1", orgSubmissionDoc())

	require.NoError(t, fx.service.Reject(ctx, "products", "sub-1", ""))

	assert.Equal(t, "rejected", fx.store.submissionStatus("sub-1"))
	assert.Equal(t, "Does not meet marketplace guidelines", fx.store.submissions["sub-1"]["rejectionReason"])
	assert.NotNil(t, fx.store.submissions["sub-1"]["reviewedAt"])
}

func TestRejectKeepsExplicitReason(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	fx.store.putSubmission("sub-1", orgSubmissionDoc())

	require.NoError(t, fx.service.Reject(ctx, "products", "sub-1", "blurry photos"))

	assert.Equal(t, "blurry photos", fx.store.submissions["sub-1"]["rejectionReason"])
}

func TestRejectAfterApproveIsRefused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	fx.store.putSubmission("sub-1", orgSubmissionDoc())
	fx.indexRepo.EXPECT().AddOwner(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishListingPromoted(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Approve(ctx, "products", "sub-1")
	require.NoError(t, err)

	err = fx.service.Reject(ctx, "products", "sub-1", "changed my mind")
	require.ErrorIs(t, err, domainerrors.ErrAlreadyProcessed)
	assert.Equal(t, "approved", fx.store.submissionStatus("sub-1"))
}

func TestListPendingUnknownQueue(t *testing.T) {
	t.Parallel()
	fx := createTestReviewService(t)

	_, err := fx.service.ListPending(context.Background(), "vehicles")
	require.ErrorIs(t, err, domainerrors.ErrUnknownQueue)
}

func TestListPendingDelegatesToRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestReviewService(t)

	expected := []*entity.Submission{{ID: "sub-1"}}
	fx.submissionRepo.EXPECT().
		FindPending(ctx, mock.AnythingOfType("entity.ReviewQueue")).
		Return(expected, nil)

	pending, err := fx.service.ListPending(ctx, "restaurants")
	require.NoError(t, err)
	assert.Equal(t, expected, pending)
}
