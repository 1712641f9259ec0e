package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfare-dev/pathkit/queue"
)

func TestParseVariant(t *testing.T) {
	cases := map[string]queue.Variant{
		"binary":    queue.Binary,
		"":          queue.Binary,
		"Fibonacci": queue.Fibonacci,
		"RADIX":     queue.Radix,
	}
	for input, want := range cases {
		got, err := parseVariant(input)
		require.NoError(t, err, "input=%q", input)
		require.Equal(t, want, got, "input=%q", input)
	}
}

func TestParseVariantUnknown(t *testing.T) {
	_, err := parseVariant("quantum")
	require.Error(t, err)
}
