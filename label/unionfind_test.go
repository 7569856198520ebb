package label

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisjointSetLinkAndFind(t *testing.T) {
	d := newDisjointSet(4)
	for l := Label(1); l <= 4; l++ {
		d.insert(l)
	}

	require.Equal(t, Label(1), d.find(1))
	require.Equal(t, Label(2), d.find(2))

	d.link(1, 2)
	require.Equal(t, d.find(1), d.find(2))

	d.link(3, 4)
	require.NotEqual(t, d.find(1), d.find(3))

	d.link(2, 3)
	require.Equal(t, d.find(1), d.find(4))
}
