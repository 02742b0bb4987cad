package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/tkndbj/nar24admin-sub002/config"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	mockRepo "github.com/tkndbj/nar24admin-sub002/internal/mocks/repository"
	mockSvc "github.com/tkndbj/nar24admin-sub002/internal/mocks/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"
)

// fakeDecisionStore is an in-memory stand-in for the transactional document
// store. Reads inside a transaction see the committed state; writes are
// staged and only applied when the decision callback and the commit both
// succeed, which lets tests assert the all-or-nothing behavior directly.
type fakeDecisionStore struct {
	submissions map[string]map[string]any
	listings    map[entity.ListingCollection]map[string]map[string]any

	commitErr  error
	executions int
}

func newFakeDecisionStore() *fakeDecisionStore {
	return &fakeDecisionStore{
		submissions: make(map[string]map[string]any),
		listings:    make(map[entity.ListingCollection]map[string]map[string]any),
	}
}

func (f *fakeDecisionStore) putSubmission(id string, doc map[string]any) {
	f.submissions[id] = doc
}

func (f *fakeDecisionStore) putListing(collection entity.ListingCollection, id string, doc map[string]any) {
	if f.listings[collection] == nil {
		f.listings[collection] = make(map[string]map[string]any)
	}
	f.listings[collection][id] = doc
}

func (f *fakeDecisionStore) listing(collection entity.ListingCollection, id string) (map[string]any, bool) {
	doc, ok := f.listings[collection][id]

	return doc, ok
}

func (f *fakeDecisionStore) submissionStatus(id string) string {
	doc, ok := f.submissions[id]
	if !ok {
		return ""
	}
	status, _ := doc["status"].(string)

	return status
}

// Execute implements repository.ReviewTransactionManager.
func (f *fakeDecisionStore) Execute(_ context.Context, _ entity.ReviewQueue, fn func(store repository.ReviewStore) error) error {
	f.executions++

	tx := &fakeDecisionTx{
		store:          f,
		stagedListings: make(map[entity.ListingCollection]map[string]map[string]any),
		stagedUpdates:  make(map[string]map[string]any),
	}

	if err := fn(tx); err != nil {
		return err
	}

	if f.commitErr != nil {
		return f.commitErr
	}

	for collection, docs := range tx.stagedListings {
		for id, doc := range docs {
			f.putListing(collection, id, doc)
		}
	}
	for id, updates := range tx.stagedUpdates {
		doc := f.submissions[id]
		if doc == nil {
			doc = make(map[string]any)
			f.submissions[id] = doc
		}
		for key, value := range updates {
			doc[key] = value
		}
	}

	return nil
}

// fakeDecisionTx is the per-transaction staged view.
type fakeDecisionTx struct {
	store          *fakeDecisionStore
	stagedListings map[entity.ListingCollection]map[string]map[string]any
	stagedUpdates  map[string]map[string]any
}

func (t *fakeDecisionTx) Submission(id string) (*entity.Submission, error) {
	doc, ok := t.store.submissions[id]
	if !ok {
		return nil, repository.ErrSubmissionNotFound
	}

	return entity.SubmissionFromDoc(id, doc), nil
}

func (t *fakeDecisionTx) ListingExists(collection entity.ListingCollection, id string) (bool, error) {
	_, ok := t.store.listings[collection][id]

	return ok, nil
}

func (t *fakeDecisionTx) CreateListing(collection entity.ListingCollection, id string, payload map[string]any) error {
	if t.stagedListings[collection] == nil {
		t.stagedListings[collection] = make(map[string]map[string]any)
	}
	t.stagedListings[collection][id] = payload

	return nil
}

func (t *fakeDecisionTx) UpdateSubmission(id string, updates map[string]any) error {
	if t.stagedUpdates[id] == nil {
		t.stagedUpdates[id] = make(map[string]any)
	}
	for key, value := range updates {
		t.stagedUpdates[id][key] = value
	}

	return nil
}

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service        usecase.ReviewUsecase
	store          *fakeDecisionStore
	submissionRepo *mockRepo.MockSubmissionRepository
	indexRepo      *mockRepo.MockCategoryIndexRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	t.Helper()

	store := newFakeDecisionStore()
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)
	indexRepo := mockRepo.NewMockCategoryIndexRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Moderation.DefaultRejectReason = "Does not meet marketplace guidelines"

	service := NewReviewService(ReviewServiceParams{
		SubmissionRepo: submissionRepo,
		Txn:            store,
		IndexRepo:      indexRepo,
		Publisher:      publisher,
		Config:         cfg,
		Logger:         logger,
	})

	return reviewServiceFixtures{
		service:        service,
		store:          store,
		submissionRepo: submissionRepo,
		indexRepo:      indexRepo,
		publisher:      publisher,
	}
}

// orgSubmissionDoc is a typical organization-owned product application.
func orgSubmissionDoc() map[string]any {
	return map[string]any{
		"status":       "pending",
		"referenceNo":  "REF-100",
		"shopId":       "shop-1",
		"shopName":     "Kuzey Electronics",
		"categoryPath": "electronics/phones",
		"productName":  "Phone X",
		"price":        499.0,
		"phone":        "+90 555 000 00 00",
		"ibanNo":       "TR00 0000",
	}
}
