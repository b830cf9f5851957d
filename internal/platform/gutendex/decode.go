package gutendex

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/xeipuuv/gojsonschema"
)

// ErrNoResults is returned by Decode when the response carries no books.
var ErrNoResults = errors.New("no results")

//go:embed schema.json
var schemaJSON []byte

var (
	loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	strict = bluemonday.StrictPolicy()
)

// page is the envelope returned by /books.
type page struct {
	Count   int          `json:"count"`
	Results []BookResult `json:"results"`
}

// Decode validates body against the catalog schema and maps its results.
// A missing or empty results array yields ErrNoResults. Any invalid element
// fails the whole decode.
func Decode(body string) ([]BookResult, error) {
	var envelope struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Results) == 0 {
		return nil, ErrNoResults
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, fmt.Errorf("validate response: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid response: %s", strings.Join(msgs, "; "))
	}

	var p page
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	for i := range p.Results {
		p.Results[i].sanitize()
	}
	return p.Results, nil
}

func (b *BookResult) sanitize() {
	b.Title = clean(b.Title)
	for i := range b.Authors {
		b.Authors[i].Name = clean(b.Authors[i].Name)
	}
	for i := range b.Languages {
		b.Languages[i] = strings.TrimSpace(b.Languages[i])
	}
}

// clean strips markup from catalog text. Sanitize escapes entities, so they
// are decoded back to plain text afterwards.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
