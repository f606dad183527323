package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/local-library/seed"
)

/* validate-seed - Standalone CLI tool to validate seed.yaml
 * Usage: go run cmd/validate-seed/main.go [seed.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	seedFile := "seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	fmt.Printf("Validating seed file: %s\n", seedFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := seed.NewLoader()
	if err := loader.Load(seedFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f := loader.Fixture()
	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Authors:   %d\n", len(f.Authors))
	fmt.Printf("Genres:    %d\n", len(f.Genres))
	fmt.Printf("Books:     %d\n", len(f.Books))
	fmt.Printf("Instances: %d\n", len(f.Instances))

	for i, b := range f.Books {
		fmt.Printf("\n%d. Book: %s\n", i+1, b.Key)
		fmt.Printf("   Title:  %s\n", b.Title)
		fmt.Printf("   Author: %s\n", b.Author)
		if len(b.Genres) > 0 {
			fmt.Printf("   Genres: %s\n", strings.Join(b.Genres, ", "))
		}
	}

	fmt.Printf("\n✓ Seed file is valid!\n")
	os.Exit(0)
}
