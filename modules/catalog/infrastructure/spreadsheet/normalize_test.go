package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		raw   string
		label string
		ok    bool
	}{
		{"Hand Tools", "Hand Tools", true},
		{"  Hand Tools  ", "Hand Tools", true},
		{"x", "x", true},
		{"\tCutting \n", "Cutting", true},
		{"", "", false},
		{"   ", "", false},
		{"\t\n", "", false},
	}

	for _, tc := range cases {
		label, ok := NormalizeLabel(tc.raw)
		require.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		require.Equal(t, tc.label, label, "raw=%q", tc.raw)
	}
}
