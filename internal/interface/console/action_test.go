package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	for n := 0; n <= 9; n++ {
		action, ok := ParseAction(n)
		assert.True(t, ok, n)
		assert.Equal(t, ActionType(n), action)
		assert.NotEqual(t, "unknown", action.String())
	}

	for _, n := range []int{-1, 10, 42} {
		_, ok := ParseAction(n)
		assert.False(t, ok, n)
	}
}

func TestActionType_String(t *testing.T) {
	assert.Equal(t, "exit", ActionExit.String())
	assert.Equal(t, "process_new_sale", ActionProcessNewSale.String())
	assert.Equal(t, "revenue_by_genre_report", ActionRevenueByGenreReport.String())
	assert.Equal(t, "unknown", ActionType(11).String())
}
