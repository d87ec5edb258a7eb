package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/datamodels/category"
	"github.com/example/gostorefront/internal/datamodels/product"
	"github.com/example/gostorefront/internal/repository/mysql"
)

func TestEnsure_IsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&category.Category{}, &product.Product{}))

	ctx := context.Background()
	categoryRepo := mysql.NewCategoryRepository(db)
	productRepo := mysql.NewProductRepository(db)
	cfg := &config.SeedConfig{}

	require.NoError(t, Ensure(ctx, cfg, categoryRepo, productRepo))
	first, err := productRepo.Count(ctx)
	require.NoError(t, err)
	require.Positive(t, first)

	// 再跑一次不会重复灌数据
	require.NoError(t, Ensure(ctx, cfg, categoryRepo, productRepo))
	second, err := productRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	cats, err := categoryRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
}
