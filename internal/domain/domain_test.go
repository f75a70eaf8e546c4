package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel_NumericValue(t *testing.T) {
	tests := []struct {
		label Label
		want  int64
		ok    bool
	}{
		{LabelOne, 1, true},
		{LabelTen, 10, true},
		{LabelCashHunt, 0, false},
		{Label("0"), 0, false},
		{Label("-2"), 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			got, ok := tt.label.NumericValue()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelAndPhase_IsBonus(t *testing.T) {
	for _, l := range AllLabels {
		_, numeric := l.NumericValue()
		assert.Equal(t, !numeric, l.IsBonus(), l)
		if l.IsBonus() {
			assert.True(t, BonusPhase(l).IsBonus(), l)
		}
	}
	assert.Equal(t, PhaseBonusCashHunt, BonusPhase(LabelCashHunt))
	assert.False(t, PhaseResult.IsBonus())
}

func TestBets(t *testing.T) {
	b := NewBets(AllLabels)
	require.Len(t, b, len(AllLabels))
	assert.Zero(t, b.Total())

	b[LabelOne] = 10
	b[LabelCrazyTime] = 5
	assert.EqualValues(t, 15, b.Total())

	c := b.Clone()
	c[LabelOne] = 99
	assert.EqualValues(t, 10, b[LabelOne])
}

func TestOverrides_MergeAndTake(t *testing.T) {
	seg, left := LabelPachinko, LabelTwo
	right := int64(5)

	var o Overrides
	assert.True(t, o.IsZero())

	o.Merge(Overrides{SegmentLabel: &seg})
	o.Merge(Overrides{TopSlotLeft: &left, TopSlotRight: &right})
	assert.False(t, o.IsZero())

	// merged values are copies
	seg = LabelOne
	require.NotNil(t, o.SegmentLabel)
	assert.Equal(t, LabelPachinko, *o.SegmentLabel)

	got := o.TakeSegment()
	require.NotNil(t, got)
	assert.Equal(t, LabelPachinko, *got)
	assert.Nil(t, o.TakeSegment())

	l, r := o.TakeTopSlot()
	require.NotNil(t, l)
	require.NotNil(t, r)
	assert.Equal(t, LabelTwo, *l)
	assert.EqualValues(t, 5, *r)
	assert.True(t, o.IsZero())
}

func TestTopSlotResult_Matches(t *testing.T) {
	left := LabelFive
	right := int64(3)

	assert.True(t, TopSlotResult{Left: &left, Right: &right}.Matches(LabelFive))
	assert.False(t, TopSlotResult{Left: &left, Right: &right}.Matches(LabelTen))
	assert.False(t, TopSlotResult{Left: &left}.Matches(LabelFive))
	assert.False(t, TopSlotResult{}.Matches(LabelFive))
}

func TestPocketsAndBoosts(t *testing.T) {
	assert.EqualValues(t, 2, BoostDouble.Factor())
	assert.EqualValues(t, 3, BoostTriple.Factor())
	assert.EqualValues(t, 1, BoostNone.Factor())

	assert.True(t, BoostPocket(BoostTriple).IsBoost())
	assert.Equal(t, "TRIPLE", BoostPocket(BoostTriple).String())
	assert.False(t, NumberPocket(50).IsBoost())
	assert.Equal(t, "50", NumberPocket(50).String())
}

func TestSideAndFlapper_Valid(t *testing.T) {
	assert.True(t, SideRed.Valid())
	assert.True(t, SideBlue.Valid())
	assert.False(t, Side("green").Valid())

	for _, f := range Flappers {
		assert.True(t, f.Valid())
	}
	assert.False(t, Flapper("red").Valid())
}
