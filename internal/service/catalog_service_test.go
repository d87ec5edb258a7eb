package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/gostorefront/internal/datamodels/category"
	"github.com/example/gostorefront/internal/datamodels/product"
	"github.com/example/gostorefront/internal/repository/mysql"
)

func newCatalog(t *testing.T) *CatalogService {
	t.Helper()
	db := newTestDB(t)
	svc := NewCatalogService(mysql.NewCategoryRepository(db), mysql.NewProductRepository(db))

	for _, c := range []string{"Electronics", "Books"} {
		require.NoError(t, db.Create(&category.Category{Name: c}).Error)
	}
	createProduct(t, db, "Wireless Headphones", 9999, 1)
	createProduct(t, db, "Smart Watch", 19999, 1)
	createProduct(t, db, "Best Seller Book", 1999, 2)
	createProduct(t, db, "Classic Novel", 1599, 2)
	return svc
}

func names(list []*product.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}

func TestListProducts_DefaultSortByName(t *testing.T) {
	svc := newCatalog(t)

	list, err := svc.ListProducts(testCtx, product.Filter{})
	require.NoError(t, err)
	require.Equal(t,
		[]string{"Best Seller Book", "Classic Novel", "Smart Watch", "Wireless Headphones"},
		names(list))
}

func TestListProducts_CategoryFilter(t *testing.T) {
	svc := newCatalog(t)

	list, err := svc.ListProducts(testCtx, product.Filter{CategoryID: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"Best Seller Book", "Classic Novel"}, names(list))
}

func TestListProducts_SearchIsCaseInsensitive(t *testing.T) {
	svc := newCatalog(t)

	list, err := svc.ListProducts(testCtx, product.Filter{Search: "wAtCh"})
	require.NoError(t, err)
	require.Equal(t, []string{"Smart Watch"}, names(list))
}

func TestListProducts_PriceSort(t *testing.T) {
	svc := newCatalog(t)

	asc, err := svc.ListProducts(testCtx, product.Filter{Sort: product.SortPriceAsc})
	require.NoError(t, err)
	require.Equal(t,
		[]string{"Classic Novel", "Best Seller Book", "Wireless Headphones", "Smart Watch"},
		names(asc))

	desc, err := svc.ListProducts(testCtx, product.Filter{Sort: product.SortPriceDesc})
	require.NoError(t, err)
	require.Equal(t,
		[]string{"Smart Watch", "Wireless Headphones", "Best Seller Book", "Classic Novel"},
		names(desc))
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := newCatalog(t)

	_, err := svc.GetProduct(testCtx, 424242)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFeatured_LimitsResults(t *testing.T) {
	svc := newCatalog(t)

	list, err := svc.Featured(testCtx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
