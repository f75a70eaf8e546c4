package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
)

func sampleRound(ts time.Time) domain.RoundRecord {
	label := domain.LabelCoinFlip
	winnings := int64(500)
	return domain.RoundRecord{
		RoundID:   uuid.New(),
		Timestamp: ts.UTC().Truncate(time.Microsecond),
		Bets:      domain.Bets{domain.LabelCoinFlip: 20, domain.LabelOne: 0},
		TotalBet:  20,
		WinningSegment: domain.Segment{
			Index: 3,
			Label: domain.LabelCoinFlip,
			Kind:  domain.KindBonus,
		},
		IsBonus:       true,
		BonusWinnings: &winnings,
		BonusDetails: &domain.BonusDetails{
			Kind: domain.LabelCoinFlip,
			CoinFlip: &domain.CoinFlipDetails{
				Red: 10, Blue: 25, Choice: domain.SideBlue, Result: domain.SideBlue,
			},
		},
		RoundWinnings: 520,
		NetResult:     500,
		Overrides:     &domain.Overrides{SegmentLabel: &label},
		Draws:         []domain.Draw{{N: 4, Index: 0}, {N: 10, Index: 6}},
	}
}

func TestRoundRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewRoundRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	now := time.Now()
	old := sampleRound(now.AddDate(0, 0, -60))
	recent := sampleRound(now.Add(-time.Hour))
	newest := sampleRound(now)

	for _, rec := range []domain.RoundRecord{old, recent, newest} {
		require.NoError(t, repo.SaveRound(ctx, rec))
	}
	require.NoError(t, repo.SaveRound(ctx, newest), "duplicate insert is ignored")

	t.Run("GetRound round-trips the JSONB record", func(t *testing.T) {
		got, err := repo.GetRound(ctx, recent.RoundID)
		require.NoError(t, err)
		assert.Equal(t, recent.RoundID, got.RoundID)
		assert.True(t, recent.Timestamp.Equal(got.Timestamp))
		assert.Equal(t, recent.Bets, got.Bets)
		require.NotNil(t, got.BonusDetails)
		assert.Equal(t, *recent.BonusDetails.CoinFlip, *got.BonusDetails.CoinFlip)
		assert.Equal(t, recent.Draws, got.Draws)
	})

	t.Run("GetRound unknown id", func(t *testing.T) {
		_, err := repo.GetRound(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrRoundNotFound)
	})

	t.Run("ListRounds filters and orders", func(t *testing.T) {
		all, err := repo.ListRounds(ctx, roundlog.Filter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, newest.RoundID, all[0].RoundID)

		since := now.AddDate(0, 0, -1)
		limited, err := repo.ListRounds(ctx, roundlog.Filter{Since: &since, Limit: 1})
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, newest.RoundID, limited[0].RoundID)
	})

	t.Run("CleanupOldRounds", func(t *testing.T) {
		deleted, err := repo.CleanupOldRounds(ctx, 30)
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)

		_, err = repo.GetRound(ctx, old.RoundID)
		assert.ErrorIs(t, err, domain.ErrRoundNotFound)
	})
}
