// Package catalog loads the static product catalog the storefront serves.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/utafrali/storefront/internal/domain"
)

//go:embed products.json
var defaultProducts []byte

// Load returns the products at path, or the embedded catalog when path is
// empty.
func Load(path string) ([]domain.Product, error) {
	data := defaultProducts
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a JSON array of products and checks that ids are present and
// unique and that prices are not negative.
func Parse(data []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: missing id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %s", i, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog entry %s: negative price", p.ID)
		}
	}

	return products, nil
}
