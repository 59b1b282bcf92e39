package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "glossary.db", "-x", "1"},
			allowed: []string{"-d"},
			want:    []string{"-d", "glossary.db"},
		},
		{
			name:    "equals form",
			args:    []string{"-driver=pgx", "-x=1"},
			allowed: []string{"-driver"},
			want:    []string{"-driver=pgx"},
		},
		{
			name:    "order preserved across several allowed flags",
			args:    []string{"-a", ":50051", "--other", "v", "-h", ":8000"},
			allowed: []string{"-a", "-h"},
			want:    []string{"-a", ":50051", "-h", ":8000"},
		},
		{
			name:    "dash token is not a value",
			args:    []string{"-c", "-a", ":1"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "nothing allowed matches",
			args:    []string{"positional", "-q"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "glossary.yaml", ConfigFile([]string{"-a", ":1", "-c", "glossary.yaml"}))
	assert.Equal(t, "alt.toml", ConfigFile([]string{"-config=alt.toml"}))
	assert.Equal(t, "long.json", ConfigFile([]string{"--config", "long.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-a", ":1"}))
}
