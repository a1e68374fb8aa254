package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poseidon/database/model"
	"poseidon/web/entity"
)

func TestRatingCrud(t *testing.T) {
	setupTestDB(t)
	svc := RatingService{}

	rating := &model.Rating{
		MoodysRating: "Aa1",
		SandPRating:  "AA+",
		FitchRating:  "AA",
		OrderNumber:  1,
	}
	require.NoError(t, svc.CreateRating(rating))

	got, err := svc.GetRating(rating.Id)
	require.NoError(t, err)
	assert.Equal(t, "AA+", got.SandPRating)

	got.OrderNumber = 7
	require.NoError(t, svc.UpdateRating(rating.Id, got))

	got, err = svc.GetRating(rating.Id)
	require.NoError(t, err)
	assert.Equal(t, 7, got.OrderNumber)

	require.NoError(t, svc.DeleteRating(rating.Id))
	_, err = svc.GetRating(rating.Id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRatingDtoMapping(t *testing.T) {
	svc := RatingService{}

	rating, err := svc.ToEntity(&entity.RatingDto{
		MoodysRating: "Baa2",
		SandPRating:  "BBB",
		FitchRating:  "BBB",
		OrderNumber:  "12",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, rating.OrderNumber)

	dto := svc.ToDto(rating)
	assert.Equal(t, "12", dto.OrderNumber)
	assert.Equal(t, "Baa2", dto.MoodysRating)
}
