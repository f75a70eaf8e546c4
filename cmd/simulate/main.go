// Command simulate plays many rounds offline against the outcome table and
// prints the return-to-player report as JSON.
//
// Usage:
//
//	simulate -rounds 100000 -bets "1=10,CASH_HUNT=5" [-seed 42] [-table configs/table.yaml]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/logger"
	"github.com/osse101/WheelShow_Go/internal/simulator"
	"github.com/osse101/WheelShow_Go/internal/table"
)

func main() {
	var (
		rounds    = flag.Int("rounds", 10000, "number of rounds to play")
		seed      = flag.Uint64("seed", 0, "RNG seed (0 picks one from the clock)")
		bets      = flag.String("bets", "1=1", "stake per round as LABEL=AMOUNT pairs separated by commas")
		tablePath = flag.String("table", "", "optional outcome table override file")
		logLevel  = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	logger.InitLoggerWithWriter(logger.NewConfig(*logLevel, "text", "wheelshow-simulate", "", "", false), os.Stderr)

	if err := run(*rounds, *seed, *bets, *tablePath); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(rounds int, seed uint64, rawBets, tablePath string) error {
	tbl, err := table.Load(tablePath)
	if err != nil {
		return err
	}

	bets, err := parseBets(rawBets)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulator.New(tbl).Run(ctx, simulator.Params{
		Rounds: rounds,
		Bets:   bets,
		Seed:   seed,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// parseBets reads "1=10,CASH_HUNT=5" into a stake map
func parseBets(raw string) (domain.Bets, error) {
	bets := domain.Bets{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		label, amount, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid bet %q, expected LABEL=AMOUNT", pair)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid amount in bet %q", pair)
		}
		bets[domain.Label(strings.ToUpper(strings.TrimSpace(label)))] += n
	}
	if len(bets) == 0 {
		return nil, fmt.Errorf("no bets given")
	}
	return bets, nil
}
