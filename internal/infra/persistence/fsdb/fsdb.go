// Package fsdb contains the concrete implementation of the persistence layer
// using Firestore.
package fsdb

import (
	"context"
	"log/slog"

	"github.com/tkndbj/nar24admin-sub002/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names outside the review queues.
const (
	usersCollection         = "users"
	notificationsSubcol     = "notifications"
	broadcastsCollection    = "broadcasts"
	ticketsCollection       = "support_tickets"
	categoryIndexCollection = "category_shops"
)

// AppParams holds dependencies for the Firebase app, injected by Fx.
type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

// NewApp initializes the Firebase app shared by Firestore, Auth and Messaging.
func NewApp(params AppParams) (*firebase.App, error) {
	conf := &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(params.Ctx, conf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewClient creates the Firestore client and closes it on shutdown.
func NewClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
