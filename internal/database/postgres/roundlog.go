package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/roundlog"
)

type roundRepository struct {
	db *pgxpool.Pool
}

// NewRoundRepository creates a new PostgreSQL round log repository
func NewRoundRepository(db *pgxpool.Pool) roundlog.Repository {
	return &roundRepository{db: db}
}

// SaveRound stores a settled round. The full record is kept as JSONB; the
// columns beside it exist for filtering and retention.
func (r *roundRepository) SaveRound(ctx context.Context, rec domain.RoundRecord) error {
	query := `
		INSERT INTO rounds (round_id, played_at, winning_label, is_bonus, total_bet, round_winnings, net_result, record)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (round_id) DO NOTHING
	`

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalRound, err)
	}

	_, err = r.db.Exec(ctx, query,
		rec.RoundID,
		rec.Timestamp,
		string(rec.WinningSegment.Label),
		rec.IsBonus,
		rec.TotalBet,
		rec.RoundWinnings,
		rec.NetResult,
		recordJSON,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRound, err)
	}
	return nil
}

// GetRound retrieves one round by id
func (r *roundRepository) GetRound(ctx context.Context, id uuid.UUID) (*domain.RoundRecord, error) {
	query := `SELECT record FROM rounds WHERE round_id = $1`

	var recordJSON []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&recordJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRounds, err)
	}

	var rec domain.RoundRecord
	if err := json.Unmarshal(recordJSON, &rec); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalRound, err)
	}
	return &rec, nil
}

// ListRounds retrieves rounds based on filter criteria
func (r *roundRepository) ListRounds(ctx context.Context, filter roundlog.Filter) ([]domain.RoundRecord, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT record
		FROM rounds
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND played_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND played_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY played_at DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRounds, err)
	}
	defer rows.Close()

	return r.scanRounds(rows)
}

// CleanupOldRounds removes rounds older than the specified number of days
func (r *roundRepository) CleanupOldRounds(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM rounds
		WHERE played_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *roundRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// scanRounds decodes the JSONB record column of every row
func (r *roundRepository) scanRounds(rows pgx.Rows) ([]domain.RoundRecord, error) {
	rounds := []domain.RoundRecord{}

	for rows.Next() {
		var recordJSON []byte
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, err
		}

		var rec domain.RoundRecord
		if err := json.Unmarshal(recordJSON, &rec); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalRound, err)
		}
		rounds = append(rounds, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}
