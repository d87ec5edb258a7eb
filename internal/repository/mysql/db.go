package mysql

import (
	"log"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/example/gostorefront/internal/config"
	"github.com/example/gostorefront/internal/datamodels/cart"
	"github.com/example/gostorefront/internal/datamodels/category"
	"github.com/example/gostorefront/internal/datamodels/order"
	"github.com/example/gostorefront/internal/datamodels/product"
	"github.com/example/gostorefront/internal/datamodels/user"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Init 初始化全局 GORM 实例并自动迁移表结构
func Init(cfg *config.MySQLConfig) *gorm.DB {
	once.Do(func() {
		var err error
		db, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}

		if err = AutoMigrate(db); err != nil {
			log.Fatalf("auto migrate failed: %v", err)
		}
	})
	return db
}

// AutoMigrate 迁移全部业务表，测试里也会对临时库调用
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&product.Product{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
	)
}

// DB 获取全局 DB
func DB() *gorm.DB {
	return db
}
