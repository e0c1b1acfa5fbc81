package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic or produce output.
	log.Info().Msg("discarded")
	log.Error().Msg("discarded")
}

func TestComponent(t *testing.T) {
	log := Nop()
	child := log.Component("session")

	require.NotNil(t, child)
	assert.NotSame(t, log, child)
	child.Debug().Msg("discarded")
}
