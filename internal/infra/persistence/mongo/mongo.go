// Package mongo contains the document-store implementation of the persistence layer.
package mongo

import (
	"context"
	"log/slog"

	"hosting/config"
	"hosting/internal/domain/lifecycle"
	"hosting/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database handle.
// The connection is verified and the unique indexes ensured when the app starts.
func New(params Params) (*mongodriver.Database, error) {
	cfg := params.Config.MongoDB
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongodb uri must be provided")
	}

	client, err := mongodriver.Connect(
		options.Client().
			ApplyURI(cfg.URI).
			SetTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.InfoContext(ctx, "Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique indexes that back username, email and
// service id uniqueness. Creating an existing index is a no-op.
func EnsureIndexes(ctx context.Context, db *mongodriver.Database) error {
	_, err := db.Collection(accountsCollection).Indexes().CreateMany(ctx, []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create account indexes")
	}

	_, err = db.Collection(productsCollection).Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "serviceId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_service_id"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create product indexes")
	}

	return nil
}
