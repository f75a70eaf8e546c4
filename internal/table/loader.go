package table

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/WheelShow_Go/internal/domain"
	"github.com/osse101/WheelShow_Go/internal/validation"
)

var schemaValidator = validation.NewSchemaValidator()

// RawConfig is the YAML override file. Any section left empty keeps the default.
type RawConfig struct {
	Segments []string `yaml:"segments"`
	TopSlot  struct {
		Left  []string `yaml:"left"`
		Right []int64  `yaml:"right"`
	} `yaml:"top_slot"`
	CoinFlip []int64 `yaml:"coin_flip"`
	Pachinko struct {
		Board []string `yaml:"board"`
		Cap   int64    `yaml:"cap"`
	} `yaml:"pachinko"`
	CashHunt  []WeightedValue `yaml:"cash_hunt"`
	CrazyTime struct {
		Wheel []string `yaml:"wheel"`
		Cap   int64    `yaml:"cap"`
	} `yaml:"crazy_time"`
}

// Load reads a YAML override file on top of the default table.
// An empty path or a missing file yields the default table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	def, err := merge(DefaultDefinition(), raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBuildTable, err)
	}

	t, err := New(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBuildTable, err)
	}

	slog.Default().Info(LogMsgTableLoaded,
		"path", path,
		"segments", t.SegmentCount(),
		"cash_hunt_cells", len(t.cashHuntPool))
	return t, nil
}

// Parse builds a table from YAML bytes layered over the default
func Parse(data []byte) (*Table, error) {
	raw, err := decode(data)
	if err != nil {
		return nil, err
	}
	def, err := merge(DefaultDefinition(), raw)
	if err != nil {
		return nil, err
	}
	return New(def)
}

func readYAML(path string) (RawConfig, error) {
	var raw RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Default().Warn(LogMsgTableFileMissing, "path", path)
			return raw, nil
		}
		return raw, fmt.Errorf("%s: %w", ErrContextReadTable, err)
	}
	return decode(b)
}

// decode checks the document against the table schema before unmarshalling
func decode(data []byte) (RawConfig, error) {
	var raw RawConfig
	if err := schemaValidator.ValidateYAML(data, validation.SchemaTable); err != nil {
		return raw, fmt.Errorf("%w: %s: %v", domain.ErrInvalidTable, ErrContextParseTable, err)
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("%s: %w", ErrContextParseTable, err)
	}
	return raw, nil
}

// merge overrides each section of def that raw provides
func merge(def Definition, raw RawConfig) (Definition, error) {
	if len(raw.Segments) > 0 {
		def.Segments = toLabels(raw.Segments)
	}
	if len(raw.TopSlot.Left) > 0 {
		def.TopSlotLeft = toLabels(raw.TopSlot.Left)
	}
	if len(raw.TopSlot.Right) > 0 {
		def.TopSlotRight = raw.TopSlot.Right
	}
	if len(raw.CoinFlip) > 0 {
		def.CoinFlipValues = raw.CoinFlip
	}
	if len(raw.Pachinko.Board) > 0 {
		board, err := parsePockets(raw.Pachinko.Board)
		if err != nil {
			return def, fmt.Errorf("pachinko: %w", err)
		}
		def.PachinkoBoard = board
	}
	if raw.Pachinko.Cap > 0 {
		def.PachinkoCap = raw.Pachinko.Cap
	}
	if len(raw.CashHunt) > 0 {
		def.CashHuntPool = Expand(raw.CashHunt)
	}
	if len(raw.CrazyTime.Wheel) > 0 {
		wheel, err := parsePockets(raw.CrazyTime.Wheel)
		if err != nil {
			return def, fmt.Errorf("crazy time: %w", err)
		}
		def.CrazyTimeWheel = wheel
	}
	if raw.CrazyTime.Cap > 0 {
		def.CrazyTimeCap = raw.CrazyTime.Cap
	}
	return def, nil
}

func toLabels(in []string) []domain.Label {
	out := make([]domain.Label, len(in))
	for i, s := range in {
		out[i] = domain.Label(strings.ToUpper(strings.TrimSpace(s)))
	}
	return out
}

// parsePockets accepts numbers, DOUBLE and TRIPLE
func parsePockets(in []string) ([]domain.Pocket, error) {
	out := make([]domain.Pocket, len(in))
	for i, s := range in {
		s = strings.ToUpper(strings.TrimSpace(s))
		switch domain.Boost(s) {
		case domain.BoostDouble, domain.BoostTriple:
			out[i] = domain.BoostPocket(domain.Boost(s))
			continue
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pocket %d: %q is neither a number nor a boost", i, s)
		}
		out[i] = domain.NumberPocket(v)
	}
	return out, nil
}
