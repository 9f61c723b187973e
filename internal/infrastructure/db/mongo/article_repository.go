package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellness/portal/internal/core/domain"
)

const articleSequence = "article_id"

// ArticleRepository stores articles with integer ids drawn from a counter
// document, so ids stay ascending like an autoincrement column.
type ArticleRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{
		coll:     db.Collection(articlesCollection),
		counters: db.Collection(countersCollection),
	}
}

type articleDoc struct {
	ID          int64  `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	ImageURL    string `bson:"image_url"`
	Link        string `bson:"link"`
	CreatedAt   int64  `bson:"created_at"`
}

func newArticleDoc(id int64, a *domain.Article) articleDoc {
	return articleDoc{
		ID:          id,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Link:        a.Link,
		CreatedAt:   a.CreatedAt.Unix(),
	}
}

func (d articleDoc) toDomain() domain.Article {
	return domain.Article{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Link:        d.Link,
		CreatedAt:   unixToTime(d.CreatedAt),
	}
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) (int64, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}

	if _, err := r.coll.InsertOne(ctx, newArticleDoc(id, article)); err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	article.ID = id
	return id, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []articleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	out := make([]domain.Article, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ArticleRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": articleSequence},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next article id: %w", err)
	}
	return counter.Seq, nil
}
