package product

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeList decodes a YAML or JSON list of products. A document of the
// form {"data": [...]}, as returned by the list endpoint, is accepted too.
func DecodeList(data []byte) ([]Product, error) {
	var items []Product
	if err := yaml.Unmarshal(data, &items); err == nil {
		return nonNil(items), nil
	}

	var wrapped struct {
		Data []Product `yaml:"data"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return nonNil(wrapped.Data), nil
}

// ReadFile decodes the product list stored at path.
func ReadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	items, err := DecodeList(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func nonNil(items []Product) []Product {
	if items == nil {
		return []Product{}
	}
	return items
}
