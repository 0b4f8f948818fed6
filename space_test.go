package boxlay

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAvailableSpaceVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.core")
	defer teardown()
	//
	sp := DefiniteSpace(100)
	assert.True(t, sp.IsDefinite())
	v, ok := sp.Value()
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)
	assert.True(t, MinContent().IsMinContent())
	assert.True(t, MaxContent().IsMaxContent())
	_, ok = MinContent().Value()
	assert.False(t, ok)
	assert.Equal(t, 7.0, MaxContent().UnwrapOr(7))
}

func TestAvailableSpaceClamping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.core")
	defer teardown()
	//
	v, _ := DefiniteSpace(-5).Value()
	assert.Equal(t, 0.0, v)
	v, _ = DefiniteSpace(math.NaN()).Value()
	assert.Equal(t, 0.0, v)
	v, _ = DefiniteSpace(10).Sub(25).Value()
	assert.Equal(t, 0.0, v)
}

func TestAvailableSpaceRoughlyEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.core")
	defer teardown()
	//
	assert.True(t, DefiniteSpace(100).RoughlyEqual(DefiniteSpace(100+Epsilon/2), Epsilon))
	assert.False(t, DefiniteSpace(100).RoughlyEqual(DefiniteSpace(100.1), Epsilon))
	assert.True(t, MinContent().RoughlyEqual(MinContent(), Epsilon))
	assert.False(t, MinContent().RoughlyEqual(MaxContent(), Epsilon))
	assert.False(t, DefiniteSpace(0).RoughlyEqual(MinContent(), Epsilon))
}

func TestAvailableSpaceWithDefinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.core")
	defer teardown()
	//
	sp := MaxContent().WithDefinite(SomePx(80))
	assert.True(t, sp.IsDefinite())
	v, _ := sp.Value()
	assert.Equal(t, 80.0, v)
	assert.True(t, MaxContent().WithDefinite(Px()).IsMaxContent())
	assert.True(t, MinContent().Sub(10).IsMinContent())
}

func TestAvailableSizeAxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.core")
	defer teardown()
	//
	av := AvailSize(DefiniteSpace(100), MinContent())
	assert.True(t, av.Get(Horizontal).IsDefinite())
	assert.True(t, av.Get(Vertical).IsMinContent())
	av = av.Set(Vertical, DefiniteSpace(40))
	assert.True(t, av.H.IsDefinite())
	filled := av.WithKnown(Known(SomePx(30), Px()))
	v, _ := filled.W.Value()
	assert.Equal(t, 30.0, v)
}
