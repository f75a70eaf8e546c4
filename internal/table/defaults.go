package table

import "github.com/osse101/WheelShow_Go/internal/domain"

// WeightedValue is a value repeated Count times in a pool
type WeightedValue struct {
	Value int64 `yaml:"value"`
	Count int   `yaml:"count"`
}

var defaultCashHunt = []WeightedValue{
	{Value: 100, Count: 1},
	{Value: 75, Count: 1},
	{Value: 50, Count: 2},
	{Value: 25, Count: 10},
	{Value: 20, Count: 14},
	{Value: 15, Count: 20},
	{Value: 10, Count: 20},
	{Value: 7, Count: 20},
	{Value: 5, Count: 20},
}

var defaultCrazyTime = []struct {
	pocket domain.Pocket
	count  int
}{
	{domain.NumberPocket(5), 12},
	{domain.NumberPocket(7), 10},
	{domain.NumberPocket(10), 12},
	{domain.NumberPocket(15), 8},
	{domain.NumberPocket(20), 8},
	{domain.BoostPocket(domain.BoostDouble), 4},
	{domain.BoostPocket(domain.BoostTriple), 2},
}

// DefaultDefinition returns the standard 56-segment show layout
func DefaultDefinition() Definition {
	var (
		l1  = domain.LabelOne
		l2  = domain.LabelTwo
		l5  = domain.LabelFive
		l10 = domain.LabelTen
		cf  = domain.LabelCoinFlip
		pa  = domain.LabelPachinko
		ch  = domain.LabelCashHunt
		ct  = domain.LabelCrazyTime
	)

	return Definition{
		Options: []domain.BetOption{
			{ID: l1, Label: l1, Kind: domain.KindNumber, DisplayColor: ColorOne},
			{ID: l2, Label: l2, Kind: domain.KindNumber, DisplayColor: ColorTwo},
			{ID: l5, Label: l5, Kind: domain.KindNumber, DisplayColor: ColorFive},
			{ID: l10, Label: l10, Kind: domain.KindNumber, DisplayColor: ColorTen},
			{ID: cf, Label: cf, Kind: domain.KindBonus, DisplayColor: ColorCoinFlip},
			{ID: pa, Label: pa, Kind: domain.KindBonus, DisplayColor: ColorPachinko},
			{ID: ch, Label: ch, Kind: domain.KindBonus, DisplayColor: ColorCashHunt},
			{ID: ct, Label: ct, Kind: domain.KindBonus, DisplayColor: ColorCrazyTime},
		},
		// 1x22, 2x14, 5x7, 10x4, COIN_FLIP x4, PACHINKO x2, CASH_HUNT x2, CRAZY_TIME x1
		Segments: []domain.Label{
			l1, l2, l1, l5, l2, cf, l10, l1,
			l1, l2, l1, l5, l1, pa, ch, l2,
			l1, l2, l1, l5, cf, l10, l1, l2,
			l1, l2, l1, l5, ct, l1, l2, l1,
			l2, l1, l10, cf, l5, l1, l2, l1,
			l1, ch, pa, l2, l5, l1, l2, l1,
			l1, l10, cf, l2, l5, l1, l2, l1,
		},
		TopSlotLeft: []domain.Label{
			l1, l2, l5, cf, l1, l10, l2, pa,
			l5, l1, ch, l2, l10, ct, cf,
		},
		TopSlotRight:   []int64{2, 3, 4, 5, 7, 10, 20, 50},
		CoinFlipValues: []int64{2, 3, 4, 5, 6, 8, 10, 15, 20, 25},
		PachinkoBoard: []domain.Pocket{
			domain.NumberPocket(5),
			domain.NumberPocket(10),
			domain.NumberPocket(15),
			domain.BoostPocket(domain.BoostDouble),
			domain.NumberPocket(25),
			domain.BoostPocket(domain.BoostDouble),
			domain.NumberPocket(15),
			domain.NumberPocket(10),
			domain.NumberPocket(5),
		},
		PachinkoCap:    PachinkoCap,
		CashHuntPool:   Expand(defaultCashHunt),
		CrazyTimeWheel: crazyTimeWheel(),
		CrazyTimeCap:   CrazyTimeCap,
	}
}

// Default returns the standard table. It panics only if the built-in layout is broken.
func Default() *Table {
	t, err := New(DefaultDefinition())
	if err != nil {
		panic(err)
	}
	return t
}

// Expand flattens a weighted pool into its multiset in declaration order
func Expand(pool []WeightedValue) []int64 {
	var out []int64
	for _, w := range pool {
		for i := 0; i < w.Count; i++ {
			out = append(out, w.Value)
		}
	}
	return out
}

// crazyTimeWheel spreads the boost segments around the wheel instead of clustering them
func crazyTimeWheel() []domain.Pocket {
	var numbers, boosts []domain.Pocket
	for _, e := range defaultCrazyTime {
		for i := 0; i < e.count; i++ {
			if e.pocket.IsBoost() {
				boosts = append(boosts, e.pocket)
			} else {
				numbers = append(numbers, e.pocket)
			}
		}
	}

	wheel := make([]domain.Pocket, 0, len(numbers)+len(boosts))
	stride := len(numbers) / len(boosts)
	b := 0
	for i, p := range numbers {
		wheel = append(wheel, p)
		if (i+1)%stride == 0 && b < len(boosts) {
			wheel = append(wheel, boosts[b])
			b++
		}
	}
	return append(wheel, boosts[b:]...)
}
