package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/wellness/portal/internal/core/domain"
)

func TestAccountDoc_Mapping(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	account := &domain.Account{Email: "A@gmail.com", PasswordDigest: "abc", Role: domain.RoleAdmin, CreatedAt: created}

	doc := newAccountDoc(account)
	assert.Equal(t, "A@gmail.com", doc.Email)
	assert.Equal(t, "admin", doc.Role)
	assert.Equal(t, created.Unix(), doc.CreatedAt)
	assert.True(t, doc.ID.IsZero())

	assert.Equal(t, account, doc.toDomain())
}

func TestArticleDoc_Mapping(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	article := &domain.Article{Title: "Sleep", Description: "8h", ImageURL: "cover.png", Link: "l", CreatedAt: created}

	doc := newArticleDoc(9, article)
	assert.Equal(t, int64(9), doc.ID)

	got := doc.toDomain()
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "Sleep", got.Title)
	assert.Equal(t, "cover.png", got.ImageURL)
	assert.Equal(t, created, got.CreatedAt)
}

func TestUnixToTime_ZeroIsUnset(t *testing.T) {
	assert.True(t, unixToTime(0).IsZero())
	assert.Equal(t, time.UTC, unixToTime(1700000000).Location())
}

func accountCursor(docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, "portal.accounts", mtest.FirstBatch, docs...)
}

func TestAccountRepository_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewAccountRepository(mt.DB)
		err := repo.Insert(ctx, &domain.Account{Email: "a@gmail.com", PasswordDigest: "d", Role: domain.RoleUser, CreatedAt: time.Now()})
		require.NoError(mt, err)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: portal.accounts index: email_unique",
		}))

		repo := NewAccountRepository(mt.DB)
		err := repo.Insert(ctx, &domain.Account{Email: "a@gmail.com", PasswordDigest: "d", Role: domain.RoleUser, CreatedAt: time.Now()})
		assert.ErrorIs(mt, err, domain.ErrDuplicateEmail)
	})

	mt.Run("find", func(mt *mtest.T) {
		mt.AddMockResponses(accountCursor(bson.D{
			{Key: "email", Value: "a@gmail.com"},
			{Key: "password_digest", Value: "d"},
			{Key: "role", Value: "user"},
			{Key: "created_at", Value: int64(1700000000)},
		}))

		repo := NewAccountRepository(mt.DB)
		account, err := repo.FindByEmail(ctx, "a@gmail.com")
		require.NoError(mt, err)
		assert.Equal(mt, "a@gmail.com", account.Email)
		assert.Equal(mt, domain.RoleUser, account.Role)
		assert.Equal(mt, time.Unix(1700000000, 0).UTC(), account.CreatedAt)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(accountCursor())

		repo := NewAccountRepository(mt.DB)
		_, err := repo.FindByEmail(ctx, "nobody@gmail.com")
		assert.ErrorIs(mt, err, domain.ErrAccountNotFound)
	})
}

func counterResponse(seq int64) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
		{Key: "_id", Value: articleSequence},
		{Key: "seq", Value: seq},
	}})
}

func TestArticleRepository_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("ids come from the counter", func(mt *mtest.T) {
		mt.AddMockResponses(
			counterResponse(1), mtest.CreateSuccessResponse(),
			counterResponse(2), mtest.CreateSuccessResponse(),
		)

		repo := NewArticleRepository(mt.DB)
		first := &domain.Article{Title: "a", Description: "d", ImageURL: "i", Link: "l"}
		id1, err := repo.Create(ctx, first)
		require.NoError(mt, err)
		id2, err := repo.Create(ctx, &domain.Article{Title: "b", Description: "d", ImageURL: "i", Link: "l"})
		require.NoError(mt, err)

		assert.Equal(mt, int64(1), id1)
		assert.Equal(mt, int64(2), id2)
		assert.Equal(mt, id1, first.ID)
	})

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.articles", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(1)}, {Key: "title", Value: "a"}, {Key: "link", Value: "l1"}},
			bson.D{{Key: "_id", Value: int64(2)}, {Key: "title", Value: "b"}, {Key: "link", Value: "l2"}},
		))

		repo := NewArticleRepository(mt.DB)
		list, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, int64(1), list[0].ID)
		assert.Equal(mt, "b", list[1].Title)
		assert.True(mt, list[0].CreatedAt.IsZero())
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		repo := NewArticleRepository(mt.DB)
		assert.ErrorIs(mt, repo.Delete(ctx, 42), domain.ErrArticleNotFound)
	})
}
