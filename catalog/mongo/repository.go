package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/local-library/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// An id that is not a valid ObjectID cannot resolve and is reported as catalog.ErrNotFound

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(coll *mongo.Collection) *BookRepository {
	return &BookRepository{coll: coll}
}

func (r *BookRepository) Get(ctx context.Context, id string) (catalog.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return catalog.Book{}, catalog.ErrNotFound
	}
	var doc bookDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return catalog.Book{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Book{}, fmt.Errorf("finding book: %w", err)
	}
	return doc.book(), nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]catalog.Book, error) {
	var docs []bookDocument
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("finding books: %w", err)
	}
	books := make([]catalog.Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, d.book())
	}
	return books, nil
}

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return n, nil
}

func (r *BookRepository) Insert(ctx context.Context, b catalog.Book) (string, error) {
	doc, err := newBookDocument(b)
	if err != nil {
		return "", err
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting book: %w", err)
	}
	return insertedID(res)
}

func (r *BookRepository) Update(ctx context.Context, b catalog.Book) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return catalog.ErrNotFound
	}
	doc, err := newBookDocument(b)
	if err != nil {
		return err
	}
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}
	if res.MatchedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return catalog.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	if res.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(coll *mongo.Collection) *AuthorRepository {
	return &AuthorRepository{coll: coll}
}

func (r *AuthorRepository) Get(ctx context.Context, id string) (catalog.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return catalog.Author{}, catalog.ErrNotFound
	}
	var doc authorDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return catalog.Author{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Author{}, fmt.Errorf("finding author: %w", err)
	}
	return doc.author(), nil
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]catalog.Author, error) {
	var docs []authorDocument
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("finding authors: %w", err)
	}
	authors := make([]catalog.Author, 0, len(docs))
	for _, d := range docs {
		authors = append(authors, d.author())
	}
	return authors, nil
}

func (r *AuthorRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting authors: %w", err)
	}
	return n, nil
}

func (r *AuthorRepository) Insert(ctx context.Context, a catalog.Author) (string, error) {
	res, err := r.coll.InsertOne(ctx, newAuthorDocument(a))
	if err != nil {
		return "", fmt.Errorf("inserting author: %w", err)
	}
	return insertedID(res)
}

type GenreRepository struct {
	coll *mongo.Collection
}

func NewGenreRepository(coll *mongo.Collection) *GenreRepository {
	return &GenreRepository{coll: coll}
}

func (r *GenreRepository) Get(ctx context.Context, id string) (catalog.Genre, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return catalog.Genre{}, catalog.ErrNotFound
	}
	var doc genreDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return catalog.Genre{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Genre{}, fmt.Errorf("finding genre: %w", err)
	}
	return doc.genre(), nil
}

// FindByIDs skips ids that are malformed or do not resolve
func (r *GenreRepository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Genre, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []catalog.Genre{}, nil
	}
	var docs []genreDocument
	if err := findAll(ctx, r.coll, bson.M{"_id": bson.M{"$in": oids}}, &docs); err != nil {
		return nil, fmt.Errorf("finding genres: %w", err)
	}
	genres := make([]catalog.Genre, 0, len(docs))
	for _, d := range docs {
		genres = append(genres, d.genre())
	}
	return genres, nil
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]catalog.Genre, error) {
	var docs []genreDocument
	if err := findAll(ctx, r.coll, bson.M{}, &docs); err != nil {
		return nil, fmt.Errorf("finding genres: %w", err)
	}
	genres := make([]catalog.Genre, 0, len(docs))
	for _, d := range docs {
		genres = append(genres, d.genre())
	}
	return genres, nil
}

func (r *GenreRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting genres: %w", err)
	}
	return n, nil
}

func (r *GenreRepository) Insert(ctx context.Context, g catalog.Genre) (string, error) {
	res, err := r.coll.InsertOne(ctx, genreDocument{Name: g.Name})
	if err != nil {
		return "", fmt.Errorf("inserting genre: %w", err)
	}
	return insertedID(res)
}

type InstanceRepository struct {
	coll *mongo.Collection
}

func NewInstanceRepository(coll *mongo.Collection) *InstanceRepository {
	return &InstanceRepository{coll: coll}
}

func (r *InstanceRepository) FindByBook(ctx context.Context, bookID string) ([]catalog.BookInstance, error) {
	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return []catalog.BookInstance{}, nil
	}
	var docs []instanceDocument
	if err := findAll(ctx, r.coll, bson.M{"book": oid}, &docs); err != nil {
		return nil, fmt.Errorf("finding book instances: %w", err)
	}
	instances := make([]catalog.BookInstance, 0, len(docs))
	for _, d := range docs {
		instances = append(instances, d.instance())
	}
	return instances, nil
}

func (r *InstanceRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting book instances: %w", err)
	}
	return n, nil
}

func (r *InstanceRepository) CountByStatus(ctx context.Context, status catalog.InstanceStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status.String()})
	if err != nil {
		return 0, fmt.Errorf("counting book instances by status: %w", err)
	}
	return n, nil
}

func (r *InstanceRepository) Insert(ctx context.Context, i catalog.BookInstance) (string, error) {
	doc, err := newInstanceDocument(i)
	if err != nil {
		return "", err
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting book instance: %w", err)
	}
	return insertedID(res)
}

func findAll(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}) error {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func insertedID(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id %v", res.InsertedID)
	}
	return oid.Hex(), nil
}
