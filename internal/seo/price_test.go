package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatVND_GroupsThousands(t *testing.T) {
	t.Parallel()

	require.Equal(t, "500.000 ₫", FormatVND(500000))
	require.Equal(t, "1.250.000 ₫", FormatVND(1250000))
	require.Equal(t, "999 ₫", FormatVND(999))
}
