package server_test

import (
	"testing"

	"list-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidStrategy(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		want     bool
	}{
		{"Replace", server.StrategyReplace, true},
		{"Merge", server.StrategyMerge, true},
		{"Append", server.StrategyAppend, true},
		{"Invalid", "upsert", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{DefaultStrategy: tt.strategy}
			assert.Equal(t, tt.want, c.IsValidStrategy())
		})
	}
}
