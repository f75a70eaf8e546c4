package domain

import "strconv"

// Label identifies a bet option and every wheel segment or reel stop carrying it
type Label string

// Bet option labels
const (
	LabelOne       Label = "1"
	LabelTwo       Label = "2"
	LabelFive      Label = "5"
	LabelTen       Label = "10"
	LabelCoinFlip  Label = "COIN_FLIP"
	LabelPachinko  Label = "PACHINKO"
	LabelCashHunt  Label = "CASH_HUNT"
	LabelCrazyTime Label = "CRAZY_TIME"
)

// AllLabels lists the bet labels in table order
var AllLabels = []Label{
	LabelOne, LabelTwo, LabelFive, LabelTen,
	LabelCoinFlip, LabelPachinko, LabelCashHunt, LabelCrazyTime,
}

// IsBonus reports whether the label triggers a bonus game
func (l Label) IsBonus() bool {
	switch l {
	case LabelCoinFlip, LabelPachinko, LabelCashHunt, LabelCrazyTime:
		return true
	}
	return false
}

// NumericValue returns the payout multiplier encoded in a numeric label
func (l Label) NumericValue() (int64, bool) {
	v, err := strconv.ParseInt(string(l), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// Kind distinguishes numeric outcomes from bonus triggers
type Kind string

const (
	KindNumber Kind = "number"
	KindBonus  Kind = "bonus"
)

// BetOption is one of the fixed betting spots
type BetOption struct {
	ID           Label  `json:"id"`
	Label        Label  `json:"label"`
	Kind         Kind   `json:"kind"`
	DisplayColor string `json:"display_color"`
}

// Segment is one physical position on the main wheel
type Segment struct {
	Index      int   `json:"index"`
	Label      Label `json:"label"`
	Kind       Kind  `json:"kind"`
	Multiplier int64 `json:"multiplier"`
}

// IsBonus reports whether landing here enters a bonus game
func (s Segment) IsBonus() bool {
	return s.Kind == KindBonus
}

// TopSlotResult is the auxiliary two-reel draw. A nil side did not land.
type TopSlotResult struct {
	Left  *Label `json:"left"`
	Right *int64 `json:"right"`
}

// Matches reports whether the top slot boosts the given label
func (t TopSlotResult) Matches(label Label) bool {
	return t.Left != nil && *t.Left == label && t.Right != nil
}

// Boost distinguishes escalation pockets from numeric pockets
type Boost string

const (
	BoostNone   Boost = ""
	BoostDouble Boost = "DOUBLE"
	BoostTriple Boost = "TRIPLE"
)

// Factor returns the escalation factor applied by a boost pocket
func (b Boost) Factor() int64 {
	switch b {
	case BoostDouble:
		return 2
	case BoostTriple:
		return 3
	default:
		return 1
	}
}

// Pocket is a slot on a Pachinko board or Crazy Time wheel
type Pocket struct {
	Value int64 `json:"value,omitempty"`
	Boost Boost `json:"boost,omitempty"`
}

// IsBoost reports whether landing here escalates instead of settling
func (p Pocket) IsBoost() bool {
	return p.Boost != BoostNone
}

// String renders the pocket for logs and flavor text
func (p Pocket) String() string {
	if p.IsBoost() {
		return string(p.Boost)
	}
	return strconv.FormatInt(p.Value, 10)
}

// NumberPocket builds a numeric pocket
func NumberPocket(v int64) Pocket {
	return Pocket{Value: v}
}

// BoostPocket builds an escalation pocket
func BoostPocket(b Boost) Pocket {
	return Pocket{Boost: b}
}
