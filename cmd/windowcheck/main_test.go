package main

import (
	"testing"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/stretchr/testify/require"
)

func TestParseWindows(t *testing.T) {
	got, err := parseWindows("")
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = parseWindows("24h, 7D ,3d_7d")
	require.NoError(t, err)
	require.Equal(t, []bucket.Window{bucket.Window24h, bucket.Window7d, bucket.Window3dTo7d}, got)

	_, err = parseWindows("24h,90d")
	require.ErrorContains(t, err, "90d")
}
