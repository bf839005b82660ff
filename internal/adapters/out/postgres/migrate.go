package postgres

import (
	"fmt"

	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	table      any
	tableName  string
	name       string
	column     string
	references string
	onDelete   string
}

func foreignKeys() []foreignKey {
	return []foreignKey{
		{&productrepo.ProductDTO{}, "products", "fk_products_farmer", "farmer_id", "users(id)", "CASCADE"},
		{&orderrepo.OrderDTO{}, "orders", "fk_orders_product", "product_id", "products(id)", "RESTRICT"},
		{&orderrepo.OrderDTO{}, "orders", "fk_orders_buyer", "buyer_id", "users(id)", "RESTRICT"},
		{&notificationrepo.NotificationDTO{}, "notifications", "fk_notifications_user", "user_id", "users(id)", "CASCADE"},
	}
}

// Migrate creates or updates the schema: tables with their CHECK constraints via
// AutoMigrate, then the foreign keys that are not there yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys() {
		if db.Migrator().HasConstraint(fk.table, fk.name) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s ON DELETE %s",
			fk.tableName, fk.name, fk.column, fk.references, fk.onDelete)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	return nil
}
