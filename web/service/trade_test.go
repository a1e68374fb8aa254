package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poseidon/database/model"
	"poseidon/web/entity"
)

func TestTradeCrud(t *testing.T) {
	setupTestDB(t)
	svc := TradeService{}

	trade := &model.Trade{
		Account:     "Trade Account",
		Type:        "Type",
		BuyQuantity: decimal.NewFromInt(100),
	}
	require.NoError(t, svc.CreateTrade(trade))

	got, err := svc.GetTrade(trade.Id)
	require.NoError(t, err)
	assert.Equal(t, "Trade Account", got.Account)
	assert.True(t, got.BuyQuantity.Equal(decimal.NewFromInt(100)))

	got.BuyQuantity = decimal.NewFromFloat(0.5)
	require.NoError(t, svc.UpdateTrade(trade.Id, got))

	got, err = svc.GetTrade(trade.Id)
	require.NoError(t, err)
	assert.True(t, got.BuyQuantity.Equal(decimal.NewFromFloat(0.5)))

	require.NoError(t, svc.DeleteTrade(trade.Id))
	_, err = svc.GetTrade(trade.Id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTradeDtoMapping(t *testing.T) {
	svc := TradeService{}

	trade, err := svc.ToEntity(&entity.TradeDto{Account: "acc", Type: "ty", BuyQuantity: "-3.5"})
	require.NoError(t, err)
	assert.True(t, trade.BuyQuantity.Equal(decimal.NewFromFloat(-3.5)))

	dto := svc.ToDto(trade)
	assert.Equal(t, "-3.5", dto.BuyQuantity)
}
