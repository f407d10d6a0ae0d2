// SPDX-License-Identifier: GPL-3.0-or-later
package bow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/CrawX/go-bow-assassin/corpus"
	"github.com/CrawX/go-bow-assassin/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// Table maps an upper-cased token to the number of times it was seen.
type Table map[string]int

func NewTable() Table {
	return Table{}
}

// Tokens decodes raw and splits it on whitespace runs. Invalid UTF-8 is replaced by U+FFFD,
// decoding never fails.
func Tokens(raw []byte) []string {
	// Casers keep state between calls and must not be shared between goroutines.
	caser := cases.Upper(language.Und)

	fields := strings.Fields(decode(raw))
	for i, field := range fields {
		fields[i] = caser.String(field)
	}
	return fields
}

func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	return string(decoded)
}

// Add tokenizes raw and increments the counter of every token.
func (t Table) Add(raw []byte) {
	for _, token := range Tokens(raw) {
		t[token]++
	}
}

// Count returns 0 for unknown tokens.
func (t Table) Count(token string) int {
	return t[token]
}

// Qualifying returns the number of distinct tokens seen at least threshold times.
func (t Table) Qualifying(threshold int) int {
	qualifying := 0
	for _, count := range t {
		if count >= threshold {
			qualifying++
		}
	}
	return qualifying
}

// TotalQualifyingCount sums the counts of all tokens seen at least threshold times. Tokens
// below the threshold do not contribute at all.
func TotalQualifyingCount(t Table, threshold int) int {
	total := 0
	for _, count := range t {
		if count < threshold {
			continue
		}
		total += count
	}
	return total
}

func AccumulateSource(src domain.DocumentSource, t Table) error {
	err := src.Walk(func(doc *domain.Document) error {
		t.Add(doc.Raw)
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not accumulate %s: %w", src.Name(), err)
	}
	return nil
}

// AccumulateDirectory adds every regular file below path to t.
func AccumulateDirectory(path string, t Table) error {
	return AccumulateSource(corpus.NewDirectory(path), t)
}
