// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lexicon

import (
	"bufio"
	"bytes"
	"compress/gzip"
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Embedded compressed word lists
//
//go:embed data/first_names.txt.gz
var firstNamesDataGZ []byte

//go:embed data/last_names.txt.gz
var lastNamesDataGZ []byte

//go:embed data/places.txt.gz
var placesDataGZ []byte

// Databases holds the parsed word lists for O(1) lookups
type Databases struct {
	FirstNames map[string]bool // folded name → exists
	LastNames  map[string]bool // folded name → exists
	Places     []string        // original spelling, file order
}

var (
	databases *Databases
	loadOnce  sync.Once
	loadError error
)

// LoadDatabases decompresses the embedded lists once per process
func LoadDatabases() (*Databases, error) {
	loadOnce.Do(func() {
		databases, loadError = loadEmbeddedDatabases()
	})
	return databases, loadError
}

func loadEmbeddedDatabases() (*Databases, error) {
	db := &Databases{
		FirstNames: make(map[string]bool, 300),
		LastNames:  make(map[string]bool, 300),
	}

	first, err := readLines(firstNamesDataGZ)
	if err != nil {
		return nil, fmt.Errorf("failed to load first names: %w", err)
	}
	for _, name := range first {
		db.FirstNames[fold(name)] = true
	}

	last, err := readLines(lastNamesDataGZ)
	if err != nil {
		return nil, fmt.Errorf("failed to load last names: %w", err)
	}
	for _, name := range last {
		db.LastNames[fold(name)] = true
	}

	if db.Places, err = readLines(placesDataGZ); err != nil {
		return nil, fmt.Errorf("failed to load places: %w", err)
	}

	return db, nil
}

// readLines decompresses data and returns its non-empty trimmed lines
func readLines(compressed []byte) ([]string, error) {
	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer reader.Close()

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading decompressed data: %w", err)
	}
	return lines, nil
}

// fold lowercases and strips accents so "José" finds "Jose"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// IsFirstName reports whether word is a known given name
func (db *Databases) IsFirstName(word string) bool {
	return db.FirstNames[fold(word)]
}

// IsLastName reports whether word is a known surname
func (db *Databases) IsLastName(word string) bool {
	return db.LastNames[fold(word)]
}
