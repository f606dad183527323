package seed

import (
	"context"
	"fmt"

	"github.com/marcelsud/local-library/catalog"
	"github.com/marcelsud/local-library/internal/validator"
)

// Repositories are the stores a fixture is written to
type Repositories struct {
	Authors   catalog.AuthorRepository
	Genres    catalog.GenreRepository
	Books     catalog.BookRepository
	Instances catalog.InstanceRepository
}

// Result counts the records inserted by Apply
type Result struct {
	Authors   int
	Genres    int
	Books     int
	Instances int
}

// Apply inserts the fixture in dependency order, replacing keys with the
// ids the stores assign. Text is escaped the same way submitted forms are.
func Apply(ctx context.Context, f *Fixture, repos Repositories) (Result, error) {
	var res Result
	if err := f.Validate(); err != nil {
		return res, fmt.Errorf("validating seed: %w", err)
	}

	authorIDs := make(map[string]string, len(f.Authors))
	for _, a := range f.Authors {
		born, _ := parseDate(a.DateOfBirth)
		died, _ := parseDate(a.DateOfDeath)
		id, err := repos.Authors.Insert(ctx, catalog.Author{
			FirstName:   validator.Escape(a.FirstName),
			FamilyName:  validator.Escape(a.FamilyName),
			DateOfBirth: born,
			DateOfDeath: died,
		})
		if err != nil {
			return res, fmt.Errorf("inserting author %s: %w", a.Key, err)
		}
		authorIDs[a.Key] = id
		res.Authors++
	}

	genreIDs := make(map[string]string, len(f.Genres))
	for _, g := range f.Genres {
		id, err := repos.Genres.Insert(ctx, catalog.Genre{Name: validator.Escape(g.Name)})
		if err != nil {
			return res, fmt.Errorf("inserting genre %s: %w", g.Key, err)
		}
		genreIDs[g.Key] = id
		res.Genres++
	}

	bookIDs := make(map[string]string, len(f.Books))
	for _, bc := range f.Books {
		genre := make([]string, 0, len(bc.Genres))
		for _, key := range bc.Genres {
			genre = append(genre, genreIDs[key])
		}
		b, fields := catalog.BookForm{
			Title:   bc.Title,
			Author:  authorIDs[bc.Author],
			Summary: bc.Summary,
			ISBN:    bc.ISBN,
			Genre:   genre,
		}.Book()
		if len(fields) > 0 {
			return res, fmt.Errorf("book %s: %s", bc.Key, fields[0].Message)
		}
		id, err := repos.Books.Insert(ctx, b)
		if err != nil {
			return res, fmt.Errorf("inserting book %s: %w", bc.Key, err)
		}
		bookIDs[bc.Key] = id
		res.Books++
	}

	for i, ic := range f.Instances {
		status, _ := parseStatus(ic.Status)
		due, _ := parseDate(ic.DueBack)
		_, err := repos.Instances.Insert(ctx, catalog.BookInstance{
			Book:    bookIDs[ic.Book],
			Imprint: validator.Escape(ic.Imprint),
			Status:  status,
			DueBack: due,
		})
		if err != nil {
			return res, fmt.Errorf("inserting instance %d: %w", i+1, err)
		}
		res.Instances++
	}

	return res, nil
}
