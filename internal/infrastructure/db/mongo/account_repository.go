package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellness/portal/internal/core/domain"
)

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountsCollection)}
}

type accountDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	PasswordDigest string             `bson:"password_digest"`
	Role           string             `bson:"role"`
	CreatedAt      int64              `bson:"created_at"`
}

func newAccountDoc(a *domain.Account) accountDoc {
	return accountDoc{
		Email:          a.Email,
		PasswordDigest: a.PasswordDigest,
		Role:           string(a.Role),
		CreatedAt:      a.CreatedAt.Unix(),
	}
}

func (d accountDoc) toDomain() *domain.Account {
	return &domain.Account{
		Email:          d.Email,
		PasswordDigest: d.PasswordDigest,
		Role:           domain.Role(d.Role),
		CreatedAt:      unixToTime(d.CreatedAt),
	}
}

func (r *AccountRepository) Exists(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	return n > 0, nil
}

// Insert depends on the email_unique index created by EnsureIndexes.
func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	if _, err := r.coll.InsertOne(ctx, newAccountDoc(account)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return doc.toDomain(), nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
