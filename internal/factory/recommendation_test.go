package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/finplan/pkg/types"
)

func TestGenerateRecommendation(t *testing.T) {
	tests := []struct {
		goal   string
		amount string
	}{
		{GoalTravel, "$500"},
		{GoalCar, "$300"},
		{GoalHome, "$100,000"},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			c, err := NewRecommendationCreator(tt.goal)
			require.NoError(t, err)

			got := GenerateRecommendation(c)
			assert.Contains(t, got, tt.goal)
			assert.Contains(t, got, tt.amount)
			assert.Equal(t, tt.goal, c.CreateRecommendation().GoalType())
		})
	}
}

func TestNewRecommendationCreatorUnknownGoal(t *testing.T) {
	c, err := NewRecommendationCreator("boat")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, types.ErrUnknownVariant)
	assert.EqualError(t, err, `unknown goal type "boat"`)
}

func TestGoalTypesAllResolve(t *testing.T) {
	for _, goal := range GoalTypes() {
		_, err := NewRecommendationCreator(goal)
		assert.NoError(t, err, goal)
	}
}
