package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	require.Equal(t, "0 B", FormatSize(0))
	require.Equal(t, "512 B", FormatSize(512))
	require.Equal(t, "1.0 KB", FormatSize(1024))
	require.Equal(t, "1.5 MB", FormatSize(1536*1024))
	require.Equal(t, "2.0 GB", FormatSize(2*1024*1024*1024))
	require.Equal(t, "1.0 TB", FormatSize(1024*1024*1024*1024))
}
