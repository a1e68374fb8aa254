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

func TestBidCrud(t *testing.T) {
	setupTestDB(t)
	svc := BidService{}

	bid := &model.Bid{
		Account:     "Account Test",
		Type:        "Type Test",
		BidQuantity: decimal.NewFromFloat(10.5),
	}
	require.NoError(t, svc.CreateBid(bid))
	require.NotZero(t, bid.Id)

	got, err := svc.GetBid(bid.Id)
	require.NoError(t, err)
	assert.Equal(t, "Account Test", got.Account)
	assert.True(t, got.BidQuantity.Equal(decimal.NewFromFloat(10.5)))

	got.Account = "Account Updated"
	got.BidQuantity = decimal.NewFromInt(20)
	require.NoError(t, svc.UpdateBid(bid.Id, got))

	got, err = svc.GetBid(bid.Id)
	require.NoError(t, err)
	assert.Equal(t, "Account Updated", got.Account)
	assert.True(t, got.BidQuantity.Equal(decimal.NewFromInt(20)))

	bids, err := svc.GetBids()
	require.NoError(t, err)
	assert.Len(t, bids, 1)

	require.NoError(t, svc.DeleteBid(bid.Id))
	_, err = svc.GetBid(bid.Id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBidNotFound(t *testing.T) {
	setupTestDB(t)
	svc := BidService{}

	_, err := svc.GetBid(42)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = svc.UpdateBid(42, &model.Bid{Account: "a", Type: "t"})
	assert.True(t, errors.Is(err, ErrNotFound))

	err = svc.DeleteBid(42)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBidCreateConflict(t *testing.T) {
	setupTestDB(t)
	svc := BidService{}

	bid := &model.Bid{Account: "a", Type: "t", BidQuantity: decimal.NewFromInt(1)}
	require.NoError(t, svc.CreateBid(bid))

	dup := &model.Bid{Id: bid.Id, Account: "b", Type: "t", BidQuantity: decimal.NewFromInt(2)}
	err := svc.CreateBid(dup)
	assert.True(t, errors.Is(err, ErrConflict))

	bids, err := svc.GetBids()
	require.NoError(t, err)
	assert.Len(t, bids, 1)
}

func TestBidUpdateForcesId(t *testing.T) {
	setupTestDB(t)
	svc := BidService{}

	bid := &model.Bid{Account: "a", Type: "t", BidQuantity: decimal.NewFromInt(1)}
	require.NoError(t, svc.CreateBid(bid))

	input := &model.Bid{Id: 999, Account: "a2", Type: "t2", BidQuantity: decimal.NewFromInt(3)}
	require.NoError(t, svc.UpdateBid(bid.Id, input))
	assert.Equal(t, bid.Id, input.Id)

	bids, err := svc.GetBids()
	require.NoError(t, err)
	assert.Len(t, bids, 1)
	assert.Equal(t, "a2", bids[0].Account)
}

func TestBidDtoMapping(t *testing.T) {
	svc := BidService{}

	bid, err := svc.ToEntity(&entity.BidDto{Account: "acc", Type: "ty", BidQuantity: "1,000.25"})
	require.NoError(t, err)
	assert.True(t, bid.BidQuantity.Equal(decimal.NewFromFloat(1000.25)))

	dto := svc.ToDto(bid)
	assert.Equal(t, "acc", dto.Account)
	assert.Equal(t, "1000.25", dto.BidQuantity)
}
