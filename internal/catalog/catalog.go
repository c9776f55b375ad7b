package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is returned (wrapped) when a catalog fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Company is the header shown above the tabs.
type Company struct {
	Name       string `yaml:"name"`
	Logo       string `yaml:"logo"`
	Revenue    string `yaml:"revenue"`
	Employees  string `yaml:"employees"`
	Experience string `yaml:"experience"`
	Pro        bool   `yaml:"pro"`
	Verified   bool   `yaml:"verified"`
	// Overview is markdown rendered on the Overview tab.
	Overview string `yaml:"overview"`
}

// Product is one card in the product grid.
type Product struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Images        []string `yaml:"images"`
	Origin        string   `yaml:"origin"`
	Grade         string   `yaml:"grade"`
	PackagingType string   `yaml:"packaging_type"`
}

// Category groups products in the sidebar.
type Category struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Icon     string    `yaml:"icon"`
	Products []Product `yaml:"products"`
}

// Catalog is everything the company screen renders.
type Catalog struct {
	Company         Company    `yaml:"company"`
	DefaultCategory string     `yaml:"default_category"`
	Categories      []Category `yaml:"categories"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	cat, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return cat, nil
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog. Unknown fields are rejected.
// Categories are returned in natural order of their ids.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	cat.normalize()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(cat.Categories, func(i, j int) bool {
		return natural.Less(cat.Categories[i].ID, cat.Categories[j].ID)
	})
	if cat.DefaultCategory == "" && len(cat.Categories) > 0 {
		cat.DefaultCategory = cat.Categories[0].Name
	}
	return &cat, nil
}

// Validate reports the first structural problem, wrapped in ErrInvalidCatalog.
func (c *Catalog) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidCatalog)
	}
	categoryIDs := make(map[string]struct{}, len(c.Categories))
	categoryNames := make(map[string]struct{}, len(c.Categories))
	productIDs := make(map[string]struct{})
	for i, cat := range c.Categories {
		if cat.ID == "" || cat.Name == "" {
			return fmt.Errorf("%w: category %d needs an id and a name", ErrInvalidCatalog, i)
		}
		if _, dup := categoryIDs[cat.ID]; dup {
			return fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, cat.ID)
		}
		if _, dup := categoryNames[cat.Name]; dup {
			return fmt.Errorf("%w: duplicate category name %q", ErrInvalidCatalog, cat.Name)
		}
		categoryIDs[cat.ID] = struct{}{}
		categoryNames[cat.Name] = struct{}{}

		for j, p := range cat.Products {
			if p.ID == "" || p.Name == "" {
				return fmt.Errorf("%w: product %d in %q needs an id and a name", ErrInvalidCatalog, j, cat.Name)
			}
			if _, dup := productIDs[p.ID]; dup {
				return fmt.Errorf("%w: duplicate product id %q", ErrInvalidCatalog, p.ID)
			}
			productIDs[p.ID] = struct{}{}
			for k, img := range p.Images {
				if img == "" {
					return fmt.Errorf("%w: product %q image %d is blank", ErrInvalidCatalog, p.ID, k)
				}
			}
		}
	}
	if c.DefaultCategory != "" {
		if _, ok := categoryNames[c.DefaultCategory]; !ok {
			return fmt.Errorf("%w: default category %q does not exist", ErrInvalidCatalog, c.DefaultCategory)
		}
	}
	return nil
}

// Category returns the category with the given name.
func (c *Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Product returns the product with the given id and the category holding it.
func (c *Catalog) Product(id string) (Product, Category, bool) {
	for _, cat := range c.Categories {
		for _, p := range cat.Products {
			if p.ID == id {
				return p, cat, true
			}
		}
	}
	return Product{}, Category{}, false
}

// CategoryNames returns the sidebar labels in display order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// ProductCount returns the number of products across all categories.
func (c *Catalog) ProductCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Products)
	}
	return n
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	dup := *c
	dup.Categories = make([]Category, len(c.Categories))
	for i, cat := range c.Categories {
		cat.Products = cloneProducts(cat.Products)
		dup.Categories[i] = cat
	}
	return &dup
}

func cloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		if p.Images != nil {
			p.Images = append([]string(nil), p.Images...)
		}
		out[i] = p
	}
	return out
}

func (c *Catalog) normalize() {
	c.Company.Name = strings.TrimSpace(c.Company.Name)
	c.DefaultCategory = strings.TrimSpace(c.DefaultCategory)
	for i := range c.Categories {
		cat := &c.Categories[i]
		cat.ID = strings.TrimSpace(cat.ID)
		cat.Name = strings.TrimSpace(cat.Name)
		for j := range cat.Products {
			p := &cat.Products[j]
			p.ID = strings.TrimSpace(p.ID)
			p.Name = strings.TrimSpace(p.Name)
			for k := range p.Images {
				p.Images[k] = strings.TrimSpace(p.Images[k])
			}
		}
	}
}
