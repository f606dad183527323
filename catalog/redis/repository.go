package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/local-library/catalog"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of the catalog repositories
 * Each record is a hash ({prefix}:{id}); a set per collection indexes the ids
 * Book instances are also indexed per book and per status
 */

const (
	bookPrefix     = "book"
	authorPrefix   = "author"
	genrePrefix    = "genre"
	instancePrefix = "bookinstance"

	booksKey            = "books"
	authorsKey          = "authors"
	genresKey           = "genres"
	instancesKey        = "bookinstances"
	instancesBookPrefix = "bookinstances:book"   // bookinstances:book:{book_id}
	instancesStatPrefix = "bookinstances:status" // bookinstances:status:{status}
)

type Store struct {
	client *redis.Client
}

// NewStore connects to Redis and checks the connection
func NewStore(addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Store{
		client: client,
	}, nil
}

func (s *Store) Books() *BookRepository {
	return &BookRepository{client: s.client}
}

func (s *Store) Authors() *AuthorRepository {
	return &AuthorRepository{client: s.client}
}

func (s *Store) Genres() *GenreRepository {
	return &GenreRepository{client: s.client}
}

func (s *Store) Instances() *InstanceRepository {
	return &InstanceRepository{client: s.client}
}

// Close closes the Redis connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (s *Store) GetClient() *redis.Client {
	return s.client
}

type BookRepository struct {
	client *redis.Client
}

func (r *BookRepository) Get(ctx context.Context, id string) (catalog.Book, error) {
	data, err := r.client.HGetAll(ctx, key(bookPrefix, id)).Result()
	if err != nil {
		return catalog.Book{}, fmt.Errorf("getting book: %w", err)
	}
	if len(data) == 0 {
		return catalog.Book{}, catalog.ErrNotFound
	}
	return bookFromHash(data)
}

func (r *BookRepository) FindAll(ctx context.Context) ([]catalog.Book, error) {
	hashes, err := members(ctx, r.client, booksKey, bookPrefix)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	books := make([]catalog.Book, 0, len(hashes))
	for _, data := range hashes {
		b, err := bookFromHash(data)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, booksKey).Result()
	if err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return n, nil
}

func (r *BookRepository) Insert(ctx context.Context, b catalog.Book) (string, error) {
	b.ID = uuid.New().String()
	fields, err := bookToHash(b)
	if err != nil {
		return "", err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key(bookPrefix, b.ID), fields)
		pipe.SAdd(ctx, booksKey, b.ID)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("inserting book: %w", err)
	}
	return b.ID, nil
}

// Update replaces every field of an existing book
func (r *BookRepository) Update(ctx context.Context, b catalog.Book) error {
	hashKey := key(bookPrefix, b.ID)
	n, err := r.client.Exists(ctx, hashKey).Result()
	if err != nil {
		return fmt.Errorf("checking book: %w", err)
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	fields, err := bookToHash(b)
	if err != nil {
		return err
	}
	if err := r.client.HSet(ctx, hashKey, fields).Err(); err != nil {
		return fmt.Errorf("updating book: %w", err)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, key(bookPrefix, id))
		pipe.SRem(ctx, booksKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	if del.Val() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

type AuthorRepository struct {
	client *redis.Client
}

func (r *AuthorRepository) Get(ctx context.Context, id string) (catalog.Author, error) {
	data, err := r.client.HGetAll(ctx, key(authorPrefix, id)).Result()
	if err != nil {
		return catalog.Author{}, fmt.Errorf("getting author: %w", err)
	}
	if len(data) == 0 {
		return catalog.Author{}, catalog.ErrNotFound
	}
	return authorFromHash(data), nil
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]catalog.Author, error) {
	hashes, err := members(ctx, r.client, authorsKey, authorPrefix)
	if err != nil {
		return nil, fmt.Errorf("selecting authors: %w", err)
	}
	authors := make([]catalog.Author, 0, len(hashes))
	for _, data := range hashes {
		authors = append(authors, authorFromHash(data))
	}
	return authors, nil
}

func (r *AuthorRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, authorsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("counting authors: %w", err)
	}
	return n, nil
}

func (r *AuthorRepository) Insert(ctx context.Context, a catalog.Author) (string, error) {
	a.ID = uuid.New().String()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key(authorPrefix, a.ID), authorToHash(a))
		pipe.SAdd(ctx, authorsKey, a.ID)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("inserting author: %w", err)
	}
	return a.ID, nil
}

type GenreRepository struct {
	client *redis.Client
}

func (r *GenreRepository) Get(ctx context.Context, id string) (catalog.Genre, error) {
	data, err := r.client.HGetAll(ctx, key(genrePrefix, id)).Result()
	if err != nil {
		return catalog.Genre{}, fmt.Errorf("getting genre: %w", err)
	}
	if len(data) == 0 {
		return catalog.Genre{}, catalog.ErrNotFound
	}
	return genreFromHash(data), nil
}

func (r *GenreRepository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Genre, error) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, key(genrePrefix, id))
	}
	hashes, err := hgetAll(ctx, r.client, keys)
	if err != nil {
		return nil, fmt.Errorf("selecting genres: %w", err)
	}
	genres := make([]catalog.Genre, 0, len(hashes))
	for _, data := range hashes {
		genres = append(genres, genreFromHash(data))
	}
	return genres, nil
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]catalog.Genre, error) {
	hashes, err := members(ctx, r.client, genresKey, genrePrefix)
	if err != nil {
		return nil, fmt.Errorf("selecting genres: %w", err)
	}
	genres := make([]catalog.Genre, 0, len(hashes))
	for _, data := range hashes {
		genres = append(genres, genreFromHash(data))
	}
	return genres, nil
}

func (r *GenreRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, genresKey).Result()
	if err != nil {
		return 0, fmt.Errorf("counting genres: %w", err)
	}
	return n, nil
}

func (r *GenreRepository) Insert(ctx context.Context, g catalog.Genre) (string, error) {
	g.ID = uuid.New().String()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key(genrePrefix, g.ID), map[string]interface{}{
			"id":   g.ID,
			"name": g.Name,
		})
		pipe.SAdd(ctx, genresKey, g.ID)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("inserting genre: %w", err)
	}
	return g.ID, nil
}

type InstanceRepository struct {
	client *redis.Client
}

// FindByBook returns the copies of a book ordered by id
func (r *InstanceRepository) FindByBook(ctx context.Context, bookID string) ([]catalog.BookInstance, error) {
	hashes, err := members(ctx, r.client, key(instancesBookPrefix, bookID), instancePrefix)
	if err != nil {
		return nil, fmt.Errorf("selecting book instances: %w", err)
	}
	instances := make([]catalog.BookInstance, 0, len(hashes))
	for _, data := range hashes {
		instances = append(instances, instanceFromHash(data))
	}
	sort.Slice(instances, func(i, j int) bool {
		return instances[i].ID < instances[j].ID
	})
	return instances, nil
}

func (r *InstanceRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, instancesKey).Result()
	if err != nil {
		return 0, fmt.Errorf("counting book instances: %w", err)
	}
	return n, nil
}

func (r *InstanceRepository) CountByStatus(ctx context.Context, status catalog.InstanceStatus) (int64, error) {
	n, err := r.client.SCard(ctx, key(instancesStatPrefix, status.String())).Result()
	if err != nil {
		return 0, fmt.Errorf("counting book instances by status: %w", err)
	}
	return n, nil
}

func (r *InstanceRepository) Insert(ctx context.Context, i catalog.BookInstance) (string, error) {
	i.ID = uuid.New().String()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key(instancePrefix, i.ID), instanceToHash(i))
		pipe.SAdd(ctx, instancesKey, i.ID)
		pipe.SAdd(ctx, key(instancesBookPrefix, i.Book), i.ID)
		pipe.SAdd(ctx, key(instancesStatPrefix, i.Status.String()), i.ID)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("inserting book instance: %w", err)
	}
	return i.ID, nil
}

// Helper functions

func key(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// members loads every hash whose id belongs to the index set
func members(ctx context.Context, client *redis.Client, index, prefix string) ([]map[string]string, error) {
	ids, err := client.SMembers(ctx, index).Result()
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", index, err)
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, key(prefix, id))
	}
	return hgetAll(ctx, client, keys)
}

// hgetAll fetches many hashes in one round trip, skipping missing keys
func hgetAll(ctx context.Context, client *redis.Client, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	pipe := client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(keys))
	for i, k := range keys {
		cmds[i] = pipe.HGetAll(ctx, k)
	}
	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("executing pipeline: %w", err)
	}

	hashes := make([]map[string]string, 0, len(keys))
	for _, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil || len(data) == 0 {
			continue
		}
		hashes = append(hashes, data)
	}
	return hashes, nil
}

func bookToHash(b catalog.Book) (map[string]interface{}, error) {
	genre := b.Genre
	if genre == nil {
		genre = []string{}
	}
	genreJSON, err := json.Marshal(genre)
	if err != nil {
		return nil, fmt.Errorf("marshaling genres: %w", err)
	}
	return map[string]interface{}{
		"id":      b.ID,
		"title":   b.Title,
		"author":  b.Author,
		"summary": b.Summary,
		"isbn":    b.ISBN,
		"genre":   string(genreJSON),
	}, nil
}

func bookFromHash(data map[string]string) (catalog.Book, error) {
	genre := []string{}
	if s := data["genre"]; s != "" {
		if err := json.Unmarshal([]byte(s), &genre); err != nil {
			return catalog.Book{}, fmt.Errorf("unmarshaling genres: %w", err)
		}
	}
	return catalog.Book{
		ID:      data["id"],
		Title:   data["title"],
		Author:  data["author"],
		Summary: data["summary"],
		ISBN:    data["isbn"],
		Genre:   genre,
	}, nil
}

func authorToHash(a catalog.Author) map[string]interface{} {
	return map[string]interface{}{
		"id":            a.ID,
		"first_name":    a.FirstName,
		"family_name":   a.FamilyName,
		"date_of_birth": formatTime(a.DateOfBirth),
		"date_of_death": formatTime(a.DateOfDeath),
	}
}

func authorFromHash(data map[string]string) catalog.Author {
	return catalog.Author{
		ID:          data["id"],
		FirstName:   data["first_name"],
		FamilyName:  data["family_name"],
		DateOfBirth: parseTime(data["date_of_birth"]),
		DateOfDeath: parseTime(data["date_of_death"]),
	}
}

func genreFromHash(data map[string]string) catalog.Genre {
	return catalog.Genre{
		ID:   data["id"],
		Name: data["name"],
	}
}

func instanceToHash(i catalog.BookInstance) map[string]interface{} {
	return map[string]interface{}{
		"id":       i.ID,
		"book":     i.Book,
		"imprint":  i.Imprint,
		"status":   i.Status.String(),
		"due_back": formatTime(i.DueBack),
	}
}

func instanceFromHash(data map[string]string) catalog.BookInstance {
	return catalog.BookInstance{
		ID:      data["id"],
		Book:    data["book"],
		Imprint: data["imprint"],
		Status:  catalog.NewInstanceStatus(data["status"]),
		DueBack: parseTime(data["due_back"]),
	}
}

// formatTime stores the zero time as an empty field
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
