package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

func TestDefault_SegmentComposition(t *testing.T) {
	tbl := Default()

	require.Equal(t, DefaultSegmentCount, tbl.SegmentCount())

	counts := make(map[domain.Label]int)
	for i, s := range tbl.Segments() {
		assert.Equal(t, i, s.Index)
		counts[s.Label]++
	}

	assert.Equal(t, map[domain.Label]int{
		domain.LabelOne:       22,
		domain.LabelTwo:       14,
		domain.LabelFive:      7,
		domain.LabelTen:       4,
		domain.LabelCoinFlip:  4,
		domain.LabelPachinko:  2,
		domain.LabelCashHunt:  2,
		domain.LabelCrazyTime: 1,
	}, counts)
}

func TestDefault_SegmentMultipliers(t *testing.T) {
	tbl := Default()

	for _, s := range tbl.Segments() {
		if s.Label.IsBonus() {
			assert.Equal(t, domain.KindBonus, s.Kind)
			assert.Zero(t, s.Multiplier)
			continue
		}
		want, _ := s.Label.NumericValue()
		assert.Equal(t, domain.KindNumber, s.Kind)
		assert.Equal(t, want, s.Multiplier)
	}
}

func TestDefault_BetOptions(t *testing.T) {
	tbl := Default()

	opts := tbl.BetOptions()
	require.Len(t, opts, 8)
	assert.Equal(t, domain.AllLabels, tbl.Labels())

	for _, o := range opts {
		assert.Equal(t, o.ID, o.Label)
		assert.NotEmpty(t, o.DisplayColor)
		assert.Equal(t, o.Label.IsBonus(), o.Kind == domain.KindBonus)
	}

	_, ok := tbl.Option("JACKPOT")
	assert.False(t, ok)
}

func TestDefault_BonusTables(t *testing.T) {
	tbl := Default()

	t.Run("cash hunt pool", func(t *testing.T) {
		pool := tbl.CashHuntPool()
		require.Len(t, pool, CashHuntGridSize)
		counts := make(map[int64]int)
		for _, v := range pool {
			counts[v]++
		}
		assert.Equal(t, map[int64]int{100: 1, 75: 1, 50: 2, 25: 10, 20: 14, 15: 20, 10: 20, 7: 20, 5: 20}, counts)
	})

	t.Run("crazy time wheel", func(t *testing.T) {
		wheel := tbl.CrazyTimeWheel()
		require.Len(t, wheel, 56)
		var doubles, triples int
		for _, p := range wheel {
			switch p.Boost {
			case domain.BoostDouble:
				doubles++
			case domain.BoostTriple:
				triples++
			default:
				assert.Contains(t, []int64{5, 7, 10, 15, 20}, p.Value)
			}
		}
		assert.Equal(t, 4, doubles)
		assert.Equal(t, 2, triples)
		assert.EqualValues(t, CrazyTimeCap, tbl.CrazyTimeCap())
	})

	t.Run("pachinko board", func(t *testing.T) {
		board := tbl.PachinkoBoard()
		require.Len(t, board, 9)
		assert.True(t, board[3].IsBoost())
		assert.True(t, board[5].IsBoost())
		assert.EqualValues(t, 25, board[4].Value)
		assert.EqualValues(t, PachinkoCap, tbl.PachinkoCap())
	})

	t.Run("reels", func(t *testing.T) {
		assert.Equal(t, []int64{2, 3, 4, 5, 7, 10, 20, 50}, tbl.TopSlotRightValues())
		assert.Len(t, tbl.TopSlotLeftReel(), 15)
		assert.Len(t, tbl.CoinFlipValues(), 10)
	})
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	tbl := Default()

	board := tbl.PachinkoBoard()
	board[0] = domain.NumberPocket(9999)
	assert.EqualValues(t, 5, tbl.PachinkoBoard()[0].Value)

	idx := tbl.SegmentIndices(domain.LabelCrazyTime)
	require.Len(t, idx, 1)
	idx[0] = 0
	assert.NotEqual(t, 0, tbl.SegmentIndices(domain.LabelCrazyTime)[0])
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Definition)
	}{
		{"no segments", func(d *Definition) { d.Segments = nil }},
		{"unknown segment label", func(d *Definition) { d.Segments[0] = "JACKPOT" }},
		{"unknown top slot label", func(d *Definition) { d.TopSlotLeft = []domain.Label{"JACKPOT"} }},
		{"single coin value", func(d *Definition) { d.CoinFlipValues = []int64{2} }},
		{"negative top slot value", func(d *Definition) { d.TopSlotRight = []int64{2, -1} }},
		{"all boost pachinko", func(d *Definition) {
			d.PachinkoBoard = []domain.Pocket{domain.BoostPocket(domain.BoostDouble)}
		}},
		{"pocket above cap", func(d *Definition) {
			d.CrazyTimeWheel = []domain.Pocket{domain.NumberPocket(CrazyTimeCap + 1)}
		}},
		{"empty cash hunt", func(d *Definition) { d.CashHuntPool = nil }},
		{"zero cap", func(d *Definition) { d.PachinkoCap = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := DefaultDefinition()
			tt.mutate(&def)
			_, err := New(def)
			assert.ErrorIs(t, err, domain.ErrInvalidTable)
		})
	}
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
top_slot:
  right: [2, 5]
pachinko:
  board: ["5", "double", "50"]
  cap: 500
cash_hunt:
  - {value: 10, count: 3}
`)
	tbl, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 5}, tbl.TopSlotRightValues())
	assert.Equal(t, []domain.Pocket{
		domain.NumberPocket(5),
		domain.BoostPocket(domain.BoostDouble),
		domain.NumberPocket(50),
	}, tbl.PachinkoBoard())
	assert.EqualValues(t, 500, tbl.PachinkoCap())
	assert.Equal(t, []int64{10, 10, 10}, tbl.CashHuntPool())
	assert.Equal(t, DefaultSegmentCount, tbl.SegmentCount())
}

func TestParse_BadPocket(t *testing.T) {
	_, err := Parse([]byte(`crazy_time: {wheel: ["5", "QUADRUPLE"]}`))
	assert.Error(t, err)
}

func TestParse_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown section", "coinflip: [2, 3]\n"},
		{"zero multiplier", "top_slot: {right: [2, 0]}\n"},
		{"cash hunt without count", "cash_hunt: [{value: 10}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrInvalidTable)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		tbl, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultSegmentCount, tbl.SegmentCount())
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		tbl, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultSegmentCount, tbl.SegmentCount())
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "table.yaml")
		require.NoError(t, os.WriteFile(path, []byte("coin_flip: [2, 4, 8]\n"), 0o600))

		tbl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 4, 8}, tbl.CoinFlipValues())
	})

	t.Run("shipped example matches defaults", func(t *testing.T) {
		tbl, err := Load(filepath.Join("..", "..", "configs", "table.example.yaml"))
		require.NoError(t, err)
		def := Default()
		assert.Equal(t, def.TopSlotLeftReel(), tbl.TopSlotLeftReel())
		assert.Equal(t, def.TopSlotRightValues(), tbl.TopSlotRightValues())
		assert.Equal(t, def.CoinFlipValues(), tbl.CoinFlipValues())
		assert.Equal(t, def.PachinkoBoard(), tbl.PachinkoBoard())
		assert.Len(t, tbl.CashHuntPool(), len(def.CashHuntPool()))
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "table.yaml")
		require.NoError(t, os.WriteFile(path, []byte("segments: [\"1\", \"7\"]\n"), 0o600))

		_, err := Load(path)
		assert.ErrorIs(t, err, domain.ErrInvalidTable)
	})
}
