package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	var b bytes.Buffer
	Infof(&b, false, "nthread: %d", 4)
	Warnf(&b, false, "odd %s", "input")
	Errorf(&b, "boom")
	require.Equal(t, "INFO: nthread: 4\nWARN: odd input\nerror: boom\n", b.String())

	b.Reset()
	Infof(&b, true, "hidden")
	Warnf(&b, true, "hidden")
	require.Empty(t, b.String())

	Errorf(&b, "shown")
	require.Equal(t, "error: shown\n", b.String())
}
