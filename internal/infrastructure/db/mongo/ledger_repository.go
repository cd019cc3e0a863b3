package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/asglabs/mission-control/internal/core/domain"
)

const (
	collectionTimekeeper = "timekeeper"

	// ledgerKey is the single storage key the whole ledger lives under:
	// one document holding the ordered entry array.
	ledgerKey = "ledger"

	// ledgerSchemaVersion guards the blob layout. Bump on any change to the
	// persisted entry shape.
	ledgerSchemaVersion = 1
)

type ledgerDocument struct {
	Key           string             `bson:"_id"`
	SchemaVersion int                `bson:"schema_version"`
	Entries       []domain.TimeEntry `bson:"entries"`
}

// LedgerRepository persists the ledger as a single versioned document.
type LedgerRepository struct {
	col *mongo.Collection
}

func NewLedgerRepository(db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{col: db.Collection(collectionTimekeeper)}
}

// Load reads the persisted ledger. A missing document means an empty
// ledger; a schema version from the future is an error so a newer writer's
// data is never silently reinterpreted.
func (r *LedgerRepository) Load(ctx context.Context) ([]domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc ledgerDocument
	err := r.col.FindOne(ctx, bson.M{"_id": ledgerKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger load: %w", err)
	}

	if doc.SchemaVersion > ledgerSchemaVersion {
		return nil, fmt.Errorf("ledger load: unsupported schema version %d", doc.SchemaVersion)
	}
	return doc.Entries, nil
}

// Save replaces the persisted ledger with the given entries.
func (r *LedgerRepository) Save(ctx context.Context, entries []domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := ledgerDocument{
		Key:           ledgerKey,
		SchemaVersion: ledgerSchemaVersion,
		Entries:       entries,
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": ledgerKey}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("ledger save: %w", err)
	}
	return nil
}
