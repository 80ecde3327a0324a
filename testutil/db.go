// Package testutil builds the in-memory database and fixtures shared by the
// package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/Govind-619/Plug233/config"
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory database with the full schema. The pool is
// held to one connection so every query sees the same memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// NewRepos is NewDB wrapped in a repository bundle.
func NewRepos(t *testing.T) *repository.Repositories {
	return repository.New(NewDB(t))
}

func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Profile inserts a customer with the given wallet balance.
func Profile(t *testing.T, repos *repository.Repositories, name, balance string) *models.Profile {
	t.Helper()
	p := &models.Profile{
		Name:          name,
		Email:         name + "@example.com",
		Role:          models.RoleUser,
		ReferralCode:  "REF" + name,
		WalletBalance: Money(balance),
	}
	require.NoError(t, repos.Profiles.Create(context.Background(), p))
	return p
}

// Product inserts a catalog product at price.
func Product(t *testing.T, repos *repository.Repositories, name, price string) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: Money(price), Currency: "GHS", Stock: 10}
	require.NoError(t, repos.Products.Create(context.Background(), p))
	return p
}

// Coupon inserts a coupon as given.
func Coupon(t *testing.T, repos *repository.Repositories, c models.Coupon) *models.Coupon {
	t.Helper()
	require.NoError(t, repos.Coupons.Create(context.Background(), &c))
	return &c
}
