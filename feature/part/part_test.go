package part_test

import (
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/feature/part/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupDB returns an in-memory database seeded with:
//
//	categories: 1 Passives, 2 Mechanical (empty)
//	parts:      1 Resistor, 2 Capacitor (category 1)
//	stock:      part 1 x 10 + 2.5, part 2 none
//	projects:   part 1 in projects 2 and 1 (linked twice to 2)
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	seed := []any{
		&models.PartCategory{ID: 1, Name: "Passives"},
		&models.PartCategory{ID: 2, Name: "Mechanical"},
		&models.Part{ID: 1, Name: "Resistor", IPN: "R-10K", CategoryID: 1},
		&models.Part{ID: 2, Name: "Capacitor", CategoryID: 1},
		&models.StockItem{ID: 1, PartID: 1, Quantity: 10, Location: "Shelf A"},
		&models.StockItem{ID: 2, PartID: 1, Quantity: 2.5},
		&models.Project{ID: 1, Name: "Amplifier"},
		&models.Project{ID: 2, Name: "Clock"},
		&models.ProjectPart{ProjectID: 2, PartID: 1},
		&models.ProjectPart{ProjectID: 1, PartID: 1},
		&models.ProjectPart{ProjectID: 2, PartID: 1, Quantity: 4},
	}
	for _, row := range seed {
		require.NoError(t, db.Create(row).Error)
	}

	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}
