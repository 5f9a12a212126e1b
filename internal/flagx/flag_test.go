package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with value",
			args:    []string{"-a", "http://localhost", "-x", "other"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost"},
		},
		{
			name:    "equals form",
			args:    []string{"-a=http://localhost", "-x=other"},
			allowed: []string{"-a"},
			want:    []string{"-a=http://localhost"},
		},
		{
			name:    "multiple allowed",
			args:    []string{"-a", "url", "-i", "10", "-d", "db.sqlite"},
			allowed: []string{"-a", "-i", "-d"},
			want:    []string{"-a", "url", "-i", "10", "-d", "db.sqlite"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-i", "10"},
			allowed: []string{"-a", "-i"},
			want:    []string{"-a", "-i", "10"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "url"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	require.Empty(t, JsonConfigFlags())
}
