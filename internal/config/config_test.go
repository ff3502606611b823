package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePort(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "unset uses default", value: "", want: 8000},
		{name: "whitespace uses default", value: "   ", want: 8000},
		{name: "valid override", value: "3000", want: 3000},
		{name: "surrounding spaces", value: " 9090 ", want: 9090},
		{name: "highest port", value: "65535", want: 65535},
		{name: "non-numeric", value: "http", wantErr: true},
		{name: "float", value: "80.5", wantErr: true},
		{name: "hex is not base 10", value: "0x1F90", wantErr: true},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-1", wantErr: true},
		{name: "out of range", value: "70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePort(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	env := map[string]string{"PORT": "3000"}
	cfg, err := Load(func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load(func(string) string { return "" })
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(func(string) string { return "abc" })
	assert.ErrorIs(t, err, ErrInvalidPort)
}
