package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_OverallProgress(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		want float64
	}{
		{"nothing to process", Progress{}, 0},
		{"halfway", Progress{TotalLists: 1, ProcessedLists: 1, TotalItems: 3, ProcessedItems: 1}, 0.5},
		{"complete", Progress{TotalLists: 2, ProcessedLists: 2, TotalItems: 4, ProcessedItems: 4}, 1},
		{"overshoot clamps to one", Progress{TotalLists: 1, ProcessedLists: 2}, 1},
		{"lists only", Progress{TotalLists: 4, ProcessedLists: 1}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.p.OverallProgress(), 1e-9)
		})
	}
}

func TestProgress_Percentage(t *testing.T) {
	p := Progress{TotalLists: 1, ProcessedLists: 1, TotalItems: 3, ProcessedItems: 2}
	assert.Equal(t, 75, p.Percentage())

	assert.Equal(t, 0, Progress{}.Percentage())
}
