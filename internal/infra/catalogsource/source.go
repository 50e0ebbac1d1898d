// Package catalogsource loads the outfit catalog document from the embedded
// default, a local file or an S3-compatible bucket.
package catalogsource

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/outfit-genie/internal/domain/outfit"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Source yields the raw catalog YAML.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	Name() string
}

type document struct {
	Occasions map[string][]outfit.OutfitCandidate `yaml:"occasions"`
}

// Load reads src and builds the catalog.
func Load(ctx context.Context, src Source) (*outfit.Catalog, error) {
	data, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog from %s: %w", src.Name(), err)
	}
	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog from %s: %w", src.Name(), err)
	}
	return catalog, nil
}

// Parse decodes a catalog document. Unknown fields are rejected.
func Parse(data []byte) (*outfit.Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Occasions) == 0 {
		return nil, fmt.Errorf("catalog has no occasions")
	}
	return outfit.NewCatalog(doc.Occasions)
}

// Encode renders a catalog document, used when publishing to object storage.
func Encode(catalog *outfit.Catalog) ([]byte, error) {
	doc := document{Occasions: make(map[string][]outfit.OutfitCandidate)}
	for _, key := range catalog.Occasions() {
		_, outfits := catalog.Bucket(key)
		for i := range outfits {
			if outfits[i].Occasion == key {
				outfits[i].Occasion = ""
			}
		}
		doc.Occasions[key] = outfits
	}
	return yaml.Marshal(doc)
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Read(context.Context) ([]byte, error) {
	return defaultCatalog, nil
}

func (EmbeddedSource) Name() string { return "embedded" }

// FileSource reads the catalog from a local path.
type FileSource struct {
	Path string
}

func (s FileSource) Read(context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

func (s FileSource) Name() string { return "file:" + s.Path }
