package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, dump(&b))
	assert.Equal(t,
		"{Route:[Empty, Empty, Empty, Portal(Closed, 3), Empty, Portal(Open, 2), Empty] Ant:Start}\n",
		b.String())
}
