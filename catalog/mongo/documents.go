package mongo

import (
	"fmt"
	"time"

	"github.com/marcelsud/local-library/catalog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/* Document shapes of the four collections
 * References between records are ObjectIDs, converted to hex strings at the boundary
 */

type bookDocument struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty"`
	Title   string               `bson:"title"`
	Author  primitive.ObjectID   `bson:"author"`
	Summary string               `bson:"summary"`
	ISBN    string               `bson:"isbn"`
	Genre   []primitive.ObjectID `bson:"genre"`
}

type authorDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"first_name"`
	FamilyName  string             `bson:"family_name"`
	DateOfBirth *time.Time         `bson:"date_of_birth,omitempty"`
	DateOfDeath *time.Time         `bson:"date_of_death,omitempty"`
}

type genreDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type instanceDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Book    primitive.ObjectID `bson:"book"`
	Imprint string             `bson:"imprint"`
	Status  string             `bson:"status"`
	DueBack *time.Time         `bson:"due_back,omitempty"`
}

func newBookDocument(b catalog.Book) (bookDocument, error) {
	author, err := primitive.ObjectIDFromHex(b.Author)
	if err != nil {
		return bookDocument{}, fmt.Errorf("invalid author id %q: %w", b.Author, err)
	}
	genre := make([]primitive.ObjectID, 0, len(b.Genre))
	for _, id := range b.Genre {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return bookDocument{}, fmt.Errorf("invalid genre id %q: %w", id, err)
		}
		genre = append(genre, oid)
	}
	return bookDocument{
		Title:   b.Title,
		Author:  author,
		Summary: b.Summary,
		ISBN:    b.ISBN,
		Genre:   genre,
	}, nil
}

func (d bookDocument) book() catalog.Book {
	genre := make([]string, 0, len(d.Genre))
	for _, oid := range d.Genre {
		genre = append(genre, oid.Hex())
	}
	return catalog.Book{
		ID:      d.ID.Hex(),
		Title:   d.Title,
		Author:  d.Author.Hex(),
		Summary: d.Summary,
		ISBN:    d.ISBN,
		Genre:   genre,
	}
}

func newAuthorDocument(a catalog.Author) authorDocument {
	return authorDocument{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: timePtr(a.DateOfBirth),
		DateOfDeath: timePtr(a.DateOfDeath),
	}
}

func (d authorDocument) author() catalog.Author {
	return catalog.Author{
		ID:          d.ID.Hex(),
		FirstName:   d.FirstName,
		FamilyName:  d.FamilyName,
		DateOfBirth: timeValue(d.DateOfBirth),
		DateOfDeath: timeValue(d.DateOfDeath),
	}
}

func (d genreDocument) genre() catalog.Genre {
	return catalog.Genre{
		ID:   d.ID.Hex(),
		Name: d.Name,
	}
}

func newInstanceDocument(i catalog.BookInstance) (instanceDocument, error) {
	book, err := primitive.ObjectIDFromHex(i.Book)
	if err != nil {
		return instanceDocument{}, fmt.Errorf("invalid book id %q: %w", i.Book, err)
	}
	status := i.Status
	if status.Validate() != nil {
		status = catalog.Maintenance
	}
	return instanceDocument{
		Book:    book,
		Imprint: i.Imprint,
		Status:  status.String(),
		DueBack: timePtr(i.DueBack),
	}, nil
}

func (d instanceDocument) instance() catalog.BookInstance {
	return catalog.BookInstance{
		ID:      d.ID.Hex(),
		Book:    d.Book.Hex(),
		Imprint: d.Imprint,
		Status:  catalog.NewInstanceStatus(d.Status),
		DueBack: timeValue(d.DueBack),
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
