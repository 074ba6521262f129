//go:build linux

package gpio

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLineValues struct {
	writes [][]int
	setErr error
	levels []int
}

func (f *fakeLineValues) SetValues(values []int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.writes = append(f.writes, append([]int(nil), values...))
	return nil
}

func (f *fakeLineValues) Values(values []int) error {
	copy(values, f.levels)
	return nil
}

func (f *fakeLineValues) Close() error { return nil }

func newCdevLines(req lineValues, offsets ...int) *cdevLines {
	index := make(map[int]int, len(offsets))
	for i, o := range offsets {
		index[o] = i
	}
	return &cdevLines{req: req, index: index, values: make([]int, len(offsets))}
}

func TestCdevLines_SetWritesWholeGroup(t *testing.T) {
	req := &fakeLineValues{}
	l := newCdevLines(req, 26, 19, 13)

	require.NoError(t, l.Set(19, true))
	require.NoError(t, l.Set(13, true))
	require.NoError(t, l.Set(19, false))

	assert.Equal(t, [][]int{{0, 1, 0}, {0, 1, 1}, {0, 0, 1}}, req.writes)
}

func TestCdevLines_FailedSetKeepsCache(t *testing.T) {
	req := &fakeLineValues{}
	l := newCdevLines(req, 26, 19)

	req.setErr = fmt.Errorf("device busy")
	assert.Error(t, l.Set(26, true))
	assert.Equal(t, []int{0, 0}, l.values)

	req.setErr = nil
	require.NoError(t, l.Set(19, true))
	assert.Equal(t, [][]int{{0, 1}}, req.writes, "unapplied value must not be pushed")
}

func TestCdevLines_UnknownOffset(t *testing.T) {
	l := newCdevLines(&fakeLineValues{levels: []int{1}}, 20)

	assert.Error(t, l.Set(21, true))
	_, err := l.Get(21)
	assert.Error(t, err)

	v, err := l.Get(20)
	require.NoError(t, err)
	assert.True(t, v)
}
