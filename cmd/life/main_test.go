package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"life-torus/internal/game"
)

func TestCheckSeeding(t *testing.T) {
	cfg := game.DefaultConfig()
	require.NoError(t, checkSeeding(true, cfg))
	require.NoError(t, checkSeeding(false, cfg))

	cfg.Density = 0.4
	require.NoError(t, checkSeeding(false, cfg))
	require.Error(t, checkSeeding(true, cfg))
}
