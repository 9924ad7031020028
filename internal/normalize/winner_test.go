package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func raw(n int) *int { return &n }

func TestResolveWinner(t *testing.T) {
	tests := []struct {
		name             string
		raw              *int
		team1ID, team2ID int
		score1, score2   int
		want             *int
	}{
		{"raw matches team1 id", raw(47), 47, 48, 0, 0, raw(1)},
		{"raw matches team2 id", raw(48), 47, 48, 0, 0, raw(2)},
		{"raw already normalized", raw(1), 0, 0, 0, 0, raw(1)},
		{"raw already normalized side 2", raw(2), 0, 0, 0, 0, raw(2)},
		{"nil raw with tied scores", nil, 47, 48, 5, 5, nil},
		{"zero raw falls through to scores", raw(0), 0, 0, 13, 7, raw(1)},
		{"unmappable raw falls through to scores", raw(99), 47, 48, 13, 7, raw(1)},
		{"unmappable raw with tied scores", raw(99), 47, 48, 10, 10, nil},
		{"nil raw with score lead for side 2", nil, 0, 0, 3, 16, raw(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWinner(tt.raw, tt.team1ID, tt.team2ID, tt.score1, tt.score2)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestResolveWinnerPure(t *testing.T) {
	first := ResolveWinner(raw(47), 47, 48, 16, 9)
	second := ResolveWinner(raw(47), 47, 48, 16, 9)
	assert.Equal(t, *first, *second)
}

func TestResolveWinnerDoesNotMutateInput(t *testing.T) {
	in := raw(99)
	ResolveWinner(in, 47, 48, 13, 7)
	assert.Equal(t, 99, *in)
}
