package fsdb

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates the Firestore-backed user repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindByID retrieves a single user document.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return userFromSnap(snap)
}

// ListPage retrieves one page of users ordered by document key, starting
// after the given key. The cursor walk keeps broadcast fan-out memory flat
// regardless of collection size.
func (r *userRepository) ListPage(ctx context.Context, startAfter string, limit int) ([]*entity.User, error) {
	query := r.client.Collection(usersCollection).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(limit)
	if startAfter != "" {
		query = query.StartAfter(startAfter)
	}

	docs := query.Documents(ctx)
	defer docs.Stop()

	var users []*entity.User
	for {
		snap, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate users")
		}

		user, err := userFromSnap(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// Delete removes the user document. Absent documents are not an error.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(usersCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

func userFromSnap(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var user entity.User
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user")
	}
	user.ID = snap.Ref.ID

	return &user, nil
}
