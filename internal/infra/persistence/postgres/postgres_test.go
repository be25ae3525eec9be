package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"hosting/config"
	"hosting/internal/domain/entity"
	"hosting/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestToAccountDomain_SplitsLedger(t *testing.T) {
	accountID := uuid.New()
	serviceItem := uuid.New()
	cartItem := uuid.New()

	accountM := &model.AccountModel{
		ID:       accountID,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "",
		Items: []model.LedgerItemModel{
			{ID: serviceItem, AccountID: accountID, Kind: "services", ServiceID: "vps", Price: decimal.NewFromInt(10), Duration: 30},
			{ID: cartItem, AccountID: accountID, Kind: "cart", ServiceID: "mail", Price: decimal.RequireFromString("2.50"), Duration: 30},
		},
	}

	account := toAccountDomain(accountM)
	assert.Equal(t, accountID.String(), account.ID)
	assert.Equal(t, entity.RoleUser, account.Role)
	require.Len(t, account.Services, 1)
	require.Len(t, account.Cart, 1)
	assert.Equal(t, serviceItem.String(), account.Services[0].ID)
	assert.Equal(t, "mail", account.Cart[0].ServiceID)
}

func TestFromLedgerItem(t *testing.T) {
	accountID := uuid.New()
	itemM := fromLedgerItem(accountID, entity.LedgerKindCart, &entity.LedgerItem{
		ServiceID: "vps",
		Price:     decimal.RequireFromString("9.99"),
		Duration:  30,
	})

	assert.Equal(t, accountID, itemM.AccountID)
	assert.Equal(t, "cart", itemM.Kind)
	assert.True(t, decimal.RequireFromString("9.99").Equal(itemM.Price))
}

func TestProductUpdateColumns(t *testing.T) {
	name := "VPS"
	duration := 90

	columns := productUpdateColumns(entity.ProductUpdate{Name: &name, Duration: &duration})
	assert.Equal(t, map[string]any{"name": "VPS", "duration": 90}, columns)

	assert.Empty(t, productUpdateColumns(entity.ProductUpdate{}))
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	_, _, ok := poolWaitReport(prev, prev)
	assert.False(t, ok)

	attrs, level, ok := poolWaitReport(prev, sql.DBStats{WaitCount: 6, WaitDuration: 20 * time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "avgWait", attrs[2].Key)
	assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())

	_, level, ok = poolWaitReport(prev, sql.DBStats{WaitCount: 5, WaitDuration: 100 * time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestGormSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	l := newGormSlogLogger(base, cfg)
	assert.Equal(t, logger.Warn, l.level)

	sqlText, vars := l.ParamsFilter(context.Background(), "INSERT INTO accounts VALUES ($1)", "$2a$10$secret")
	assert.Equal(t, "INSERT INTO accounts VALUES ($1)", sqlText)
	assert.Nil(t, vars)

	fn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), fn, nil)
	assert.Empty(t, buf.String(), "fast successful query is below warn")

	l.Trace(context.Background(), time.Now(), fn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is ignored")

	l.Trace(context.Background(), time.Now().Add(-time.Second), fn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), fn, assert.AnError)
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), fn, assert.AnError)
	assert.Empty(t, buf.String())

	cfg.Env.Debug = true
	assert.Equal(t, logger.Info, newGormSlogLogger(base, cfg).level)
}
