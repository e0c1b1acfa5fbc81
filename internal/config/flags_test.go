package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFields(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:5000",
		"-t", "/tmp/session.json",
		"-c", "/tmp/config.json",
		"-request-timeout", "45s",
		"-refresh-interval", "10m",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", cfg.Adapter.ServerAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.TokenFile)
	assert.Equal(t, 10*time.Minute, cfg.Workers.HistoryRefreshInterval)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.ServerAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "no-port"})
	require.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    NetAddress
	}{
		{name: "localhost", input: "localhost:5000", want: NetAddress{Host: "localhost", Port: 5000}},
		{name: "ip", input: "127.0.0.1:8080", want: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bogus host", input: "not-an-ip:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
