package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCodes(t *testing.T) {
	require.Equal(t, []string{"D1", "D300", "D4"}, splitCodes([]string{"D1, D300", "D4", ""}))
	require.Nil(t, splitCodes(nil))
}
