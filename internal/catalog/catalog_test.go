package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesCompanyScreen(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	require.Equal(t, "KMG Robust", cat.Company.Name)
	require.True(t, cat.Company.Pro)
	require.Equal(t, "Dry Spices", cat.DefaultCategory)

	want := []string{
		"Dry Spices",
		"Seeds",
		"Herbs & Dehydrates",
		"Dried Fruits & Nuts",
		"Pulses",
		"Grains & Cereals",
		"Organic",
	}
	if diff := cmp.Diff(want, cat.CategoryNames()); diff != "" {
		t.Fatalf("category names mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, cat.ProductCount())

	pepper, category, ok := cat.Product("1")
	require.True(t, ok)
	require.Equal(t, "Black Pepper", pepper.Name)
	require.Equal(t, "Dry Spices", category.Name)
	require.Len(t, pepper.Images, 3)
	require.Equal(t, "Carton Box (50kg)", pepper.PackagingType)

	herbs, ok := cat.Category("Herbs & Dehydrates")
	require.True(t, ok)
	require.Empty(t, herbs.Products)
}

func TestParse_OrdersCategoriesNaturally(t *testing.T) {
	cat, err := Parse([]byte(`
company: {name: Acme}
categories:
  - {id: "10", name: Ten}
  - {id: "2", name: Two}
  - {id: "1", name: One}
`))
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"One", "Two", "Ten"}, cat.CategoryNames()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "One", cat.DefaultCategory)
}

func TestParse_TrimsFields(t *testing.T) {
	cat, err := Parse([]byte(`
company: {name: "  Acme  "}
categories:
  - id: " 1 "
    name: " Spices "
    products:
      - id: " p1 "
        name: " Pepper "
        images: [" a.jpg "]
`))
	require.NoError(t, err)

	want := Category{
		ID:   "1",
		Name: "Spices",
		Products: []Product{
			{ID: "p1", Name: "Pepper", Images: []string{"a.jpg"}},
		},
	}
	if diff := cmp.Diff(want, cat.Categories[0]); diff != "" {
		t.Fatalf("category mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "Acme", cat.Company.Name)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty", ``},
		{"missing company", `categories: [{id: "1", name: A}]`},
		{"category without id", "company: {name: A}\ncategories: [{name: A}]"},
		{"duplicate category id", "company: {name: A}\ncategories: [{id: '1', name: A}, {id: '1', name: B}]"},
		{"duplicate category name", "company: {name: A}\ncategories: [{id: '1', name: A}, {id: '2', name: A}]"},
		{"duplicate product id", "company: {name: A}\ncategories:\n  - {id: '1', name: A, products: [{id: p, name: P}]}\n  - {id: '2', name: B, products: [{id: p, name: Q}]}"},
		{"blank image", "company: {name: A}\ncategories: [{id: '1', name: A, products: [{id: p, name: P, images: ['  ']}]}]"},
		{"unknown default", "company: {name: A}\ndefault_category: Nope\ncategories: [{id: '1', name: A}]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("company: {name: A, founded: 1999}\n"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCatalog)
	require.Contains(t, err.Error(), "parse catalog")
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses built-in", func(t *testing.T) {
		cat, err := Load("  ")
		require.NoError(t, err)
		require.Equal(t, "KMG Robust", cat.Company.Name)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("company: {name: Acme}\n"), 0o600))

		cat, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "Acme", cat.Company.Name)
		require.Empty(t, cat.Categories)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("company: {name: ''}\n"), 0o600))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidCatalog)
		require.Contains(t, err.Error(), path)
	})
}

func TestClone_IsIndependent(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	dup := cat.Clone()
	dup.Categories[0].Products[0].Images[0] = "changed.jpg"
	dup.Categories[0].Name = "Changed"

	require.NotEqual(t, "changed.jpg", cat.Categories[0].Products[0].Images[0])
	require.Equal(t, "Dry Spices", cat.Categories[0].Name)
	require.Nil(t, (*Catalog)(nil).Clone())
}
