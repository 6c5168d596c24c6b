package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{name: "separate value", args: []string{"-a", "x", "-z", "y"}, allowed: []string{"-a"}, expected: []string{"-a", "x"}},
		{name: "equals form", args: []string{"--config=conf.json", "-a", "x"}, allowed: []string{"--config"}, expected: []string{"--config=conf.json"}},
		{name: "nothing allowed", args: []string{"-a", "x"}, allowed: []string{"-b"}, expected: []string{}},
		{name: "flag followed by flag", args: []string{"-a", "-b"}, allowed: []string{"-a"}, expected: []string{"-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterArgs(tt.args, tt.allowed))
		})
	}
}
