package schema

import (
	"gorm.io/gorm"
)

// Migrate creates the table of a model with GORM AutoMigrate. The table
// name may be schema-qualified ("public.metropolitan_area").
func Migrate(db *gorm.DB, model any, table string) error {
	return db.Table(table).AutoMigrate(model)
}
