// Package flavor produces the decorative message shown after a round. The
// external service is optional; any failure degrades to a static message and
// never touches settlement.
package flavor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Request describes a settled round to the generator
type Request struct {
	Outcome  string `json:"outcome"`
	Stake    int64  `json:"stake"`
	Winnings int64  `json:"winnings"`
}

// NewRequest summarises a round record
func NewRequest(rec domain.RoundRecord) Request {
	outcome := OutcomeLoss
	if rec.NetResult > 0 {
		outcome = OutcomeWin
	}
	return Request{Outcome: outcome, Stake: rec.TotalBet, Winnings: rec.RoundWinnings}
}

// Generator turns a round summary into a display message
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// HTTPGenerator posts requests as JSON to an external service
type HTTPGenerator struct {
	URL    string
	Client *http.Client
}

// NewHTTPGenerator creates a generator for url
func NewHTTPGenerator(url string) *HTTPGenerator {
	return &HTTPGenerator{
		URL:    url,
		Client: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

type generateResponse struct {
	Message string `json:"message"`
}

// Generate calls the service. The context deadline bounds the whole call.
func (g *HTTPGenerator) Generate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextEncodeRequest, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextBuildRequest, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextSendRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf(ErrMsgUnexpectedStatus, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextDecodeResponse, err)
	}

	msg := strings.TrimSpace(out.Message)
	if msg == "" {
		return "", errors.New(ErrMsgEmptyMessage)
	}
	return truncate(msg, MaxMessageLength), nil
}

// truncate cuts s to at most limit bytes without splitting a rune
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

var (
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
)

// Fallback is the static message used when no generator answers in time
func Fallback(req Request) string {
	if req.Outcome == OutcomeWin {
		return printer.Sprintf("%s! You staked $%d and took home $%d.", title.String("big win"), req.Stake, req.Winnings)
	}
	if req.Stake == 0 {
		return "No bets this round. The wheel spins on."
	}
	return printer.Sprintf("%s. $%d staked, better luck on the next spin.", title.String("not this time"), req.Stake)
}
