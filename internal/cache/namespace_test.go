package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaleNamespaces(t *testing.T) {
	tests := []struct {
		name    string
		current string
		all     []string
		want    []string
	}{
		{
			name:    "only current survives",
			current: "super-copa-v2",
			all:     []string{"super-copa-v1", "super-copa-v2", "super-copa-v3"},
			want:    []string{"super-copa-v1", "super-copa-v3"},
		},
		{
			name:    "no namespaces",
			current: "super-copa-v1",
			all:     nil,
			want:    nil,
		},
		{
			name:    "current not present",
			current: "super-copa-v2",
			all:     []string{"super-copa-v1"},
			want:    []string{"super-copa-v1"},
		},
		{
			name:    "only current present",
			current: "super-copa-v1",
			all:     []string{"super-copa-v1"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StaleNamespaces(tt.current, tt.all))
		})
	}
}
