package configs

import (
	"fmt"

	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	// TranslateError: las violaciones de índice único llegan como
	// gorm.ErrDuplicatedKey con cualquiera de los dos drivers.
	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		// asador
		&entity.Product{}, &entity.Menu{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderProduct{}, &entity.OrderMenu{},
		&entity.Inventory{}, &entity.DailySummary{}, &entity.Expense{},
		// carniceria
		&entity.Sale{}, &entity.SupplierInvoice{}, &entity.StoreInvoice{},
		&entity.StoreExpense{}, &entity.PersonalExpense{}, &entity.BankPayment{},
		&entity.CapitalEntry{},
		&entity.Client{}, &entity.Invoice{}, &entity.InvoiceLine{},
	)
}
