package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poseidon/database/model"
)

func TestCurvePointCrud(t *testing.T) {
	setupTestDB(t)
	svc := CurvePointService{}

	point := &model.CurvePoint{
		CurveId: 10,
		Term:    decimal.NewFromInt(1),
		Value:   decimal.NewFromFloat(2.5),
	}
	require.NoError(t, svc.CreateCurvePoint(point))
	require.NotZero(t, point.Id)
	require.NotNil(t, point.CreationDate)

	got, err := svc.GetCurvePoint(point.Id)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurveId)
	assert.True(t, got.Value.Equal(decimal.NewFromFloat(2.5)))

	require.NoError(t, svc.DeleteCurvePoint(point.Id))
	_, err = svc.GetCurvePoint(point.Id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCurvePointUpdateKeepsCreationDate(t *testing.T) {
	setupTestDB(t)
	svc := CurvePointService{}

	point := &model.CurvePoint{CurveId: 1, Term: decimal.NewFromInt(1), Value: decimal.NewFromInt(1)}
	require.NoError(t, svc.CreateCurvePoint(point))
	created := point.CreationDate
	require.NotNil(t, created)

	input := &model.CurvePoint{CurveId: 2, Term: decimal.NewFromInt(5), Value: decimal.NewFromInt(9)}
	require.NoError(t, svc.UpdateCurvePoint(point.Id, input))

	got, err := svc.GetCurvePoint(point.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurveId)
	require.NotNil(t, got.CreationDate)
	assert.True(t, got.CreationDate.Equal(*created))
}
