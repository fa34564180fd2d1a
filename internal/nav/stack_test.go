package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginStack() *Stack {
	return New(Frame{Name: ViewLogin})
}

func TestStack_PushGrowsAndSetsCurrent(t *testing.T) {
	s := newLoginStack()
	require.Equal(t, 1, s.Len())

	s.Push(Frame{Name: ViewDashboard})
	s.Push(Frame{Name: ViewProjectDetail, Params: map[string]string{"id": "p1"}, Title: "Recurso SAT"})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, ViewProjectDetail, s.Current().Name)
	assert.Equal(t, "p1", s.Current().Param("id"))
	assert.Equal(t, "Recurso SAT", s.Current().Title)
}

func TestStack_BackAtRootIsNoop(t *testing.T) {
	s := newLoginStack()
	s.Back()

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, ViewLogin, s.Current().Name)
}

func TestStack_BackPopsOneFrame(t *testing.T) {
	s := newLoginStack()
	s.Push(Frame{Name: ViewDashboard})
	s.Push(Frame{Name: ViewTareas})

	s.Back()
	assert.Equal(t, ViewDashboard, s.Current().Name)
	s.Back()
	assert.Equal(t, ViewLogin, s.Current().Name)
	s.Back()
	assert.Equal(t, ViewLogin, s.Current().Name)
}

func TestStack_PopToZeroLeavesRoot(t *testing.T) {
	s := newLoginStack()
	s.Push(Frame{Name: ViewDashboard})
	s.Push(Frame{Name: ViewProjectDetail, Params: map[string]string{"id": "p1"}})

	s.PopTo(0)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, ViewLogin, s.Current().Name)
}

func TestStack_PopToIntermediateIndex(t *testing.T) {
	s := newLoginStack()
	s.Push(Frame{Name: ViewDashboard})
	s.Push(Frame{Name: ViewProyectos})
	s.Push(Frame{Name: ViewProjectDetail})

	s.PopTo(1)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, ViewDashboard, s.Current().Name)
}

func TestStack_PopToOutOfRangeClamps(t *testing.T) {
	s := newLoginStack()
	s.Push(Frame{Name: ViewDashboard})

	// Past the end: unchanged.
	s.PopTo(99)
	assert.Equal(t, 2, s.Len())

	// Negative: only the root survives.
	s.PopTo(-5)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, ViewLogin, s.Current().Name)
}

func TestStack_NavigateRootDiscardsHistoryAndDecoration(t *testing.T) {
	s := newLoginStack()
	s.Push(Frame{Name: ViewDashboard})
	s.Push(Frame{Name: ViewTaskDetail, Params: map[string]string{"id": "t1"}, Title: "Escrito"})

	s.NavigateRoot(ViewTiempos)

	require.Equal(t, 1, s.Len())
	cur := s.Current()
	assert.Equal(t, ViewTiempos, cur.Name)
	assert.Nil(t, cur.Params)
	assert.Empty(t, cur.Title)
}

func TestStack_LengthAccounting(t *testing.T) {
	s := newLoginStack()
	for i := 0; i < 5; i++ {
		s.Push(Frame{Name: ViewProyectos})
	}
	assert.Equal(t, 6, s.Len())

	s.Back()
	s.Back()
	assert.Equal(t, 4, s.Len())

	s.PopTo(1)
	assert.Equal(t, 2, s.Len())
}

func TestStack_FramesReturnsCopy(t *testing.T) {
	s := newLoginStack()
	s.Push(Frame{Name: ViewDashboard})

	frames := s.Frames()
	require.Len(t, frames, 2)
	frames[0] = Frame{Name: ViewTiempos}

	assert.Equal(t, ViewLogin, s.Frames()[0].Name)
}
