package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poseidon/database/model"
)

func TestRuleNameCrud(t *testing.T) {
	setupTestDB(t)
	svc := RuleNameService{}

	rule := &model.RuleName{
		Name:        "Rule Name",
		Description: "Description",
		Json:        `{"field":"value"}`,
		Template:    "Template",
		SqlStr:      "select * from trade",
		SqlPart:     "where account = ?",
	}
	require.NoError(t, svc.CreateRuleName(rule))

	got, err := svc.GetRuleName(rule.Id)
	require.NoError(t, err)
	assert.Equal(t, "Rule Name", got.Name)
	assert.Equal(t, `{"field":"value"}`, got.Json)

	got.Description = "Updated"
	require.NoError(t, svc.UpdateRuleName(rule.Id, got))

	got, err = svc.GetRuleName(rule.Id)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Description)

	require.NoError(t, svc.DeleteRuleName(rule.Id))
	_, err = svc.GetRuleName(rule.Id)
	assert.True(t, errors.Is(err, ErrNotFound))
}
