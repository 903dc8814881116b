package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_MatchesDocumentedDefaults(t *testing.T) {
	c := Default()

	assert.Equal(t, 400, c.ResponseBudgetMS)
	assert.Equal(t, 50, c.NetworkOverheadMS)
	assert.Equal(t, 50, c.PollingIntervalMS)
	assert.Equal(t, 100, c.HealthOnFood)
	assert.Equal(t, 1, c.HealthLossPerTurn)
	assert.Equal(t, 100, c.HealthMax)
}

func TestEffectiveBudget_DeductsNetworkOverhead(t *testing.T) {
	c := Default()

	assert.Equal(t, 350*1_000_000, int(c.EffectiveBudget()))
}

func TestEffectiveBudget_NeverNegative(t *testing.T) {
	c := Default()
	c.NetworkOverheadMS = c.ResponseBudgetMS + 1000

	assert.Equal(t, int64(0), int64(c.EffectiveBudget()))
}

func TestRules_ProjectsGameRuleConstants(t *testing.T) {
	c := Default()

	r := c.Rules()

	assert.Equal(t, c.HealthMax, r.HealthMax)
	assert.Equal(t, c.HealthOnFood, r.HealthOnFood)
	assert.Equal(t, c.HealthLossPerTurn, r.HealthLossPerTurn)
}
