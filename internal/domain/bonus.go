package domain

// Side is a coin flip side
type Side string

const (
	SideRed  Side = "red"
	SideBlue Side = "blue"
)

// Valid reports whether the side is red or blue
func (s Side) Valid() bool {
	return s == SideRed || s == SideBlue
}

// Flapper is the Crazy Time marker colour. It only changes where the wheel
// appears to stop, never which segment is drawn.
type Flapper string

const (
	FlapperGreen  Flapper = "green"
	FlapperBlue   Flapper = "blue"
	FlapperYellow Flapper = "yellow"
)

// Flappers lists the selectable markers in draw order
var Flappers = []Flapper{FlapperGreen, FlapperBlue, FlapperYellow}

// Valid reports whether the flapper is one of the three markers
func (f Flapper) Valid() bool {
	for _, v := range Flappers {
		if v == f {
			return true
		}
	}
	return false
}

// BonusOutcome is produced exactly once per bonus invocation
type BonusOutcome struct {
	Winnings int64        `json:"winnings"`
	Details  BonusDetails `json:"details"`
}

// BonusDetails holds the bonus-specific record. Exactly one pointer is set.
type BonusDetails struct {
	Kind      Label             `json:"kind"`
	CoinFlip  *CoinFlipDetails  `json:"coin_flip,omitempty"`
	Pachinko  *PachinkoDetails  `json:"pachinko,omitempty"`
	CashHunt  *CashHuntDetails  `json:"cash_hunt,omitempty"`
	CrazyTime *CrazyTimeDetails `json:"crazy_time,omitempty"`
}

// CoinFlipDetails records both sides, the choice and the flip
type CoinFlipDetails struct {
	Red            int64 `json:"red"`
	Blue           int64 `json:"blue"`
	Choice         Side  `json:"choice"`
	ChoiceFallback bool  `json:"choice_fallback"`
	Result         Side  `json:"result"`
}

// PachinkoDrop is one puck drop
type PachinkoDrop struct {
	Slot   int    `json:"slot"`
	Pocket Pocket `json:"pocket"`
}

// PachinkoDetails records every drop and the board as it stood at the end
type PachinkoDetails struct {
	Drops      []PachinkoDrop `json:"drops"`
	FinalBoard []Pocket       `json:"final_board"`
	Multiplier int64          `json:"multiplier"`
}

// CashHuntDetails records the decoy grid, the bound grid and the pick
type CashHuntDetails struct {
	Display           []int64 `json:"display"`
	Final             []int64 `json:"final"`
	Pick              int     `json:"pick"`
	PickFallback      bool    `json:"pick_fallback"`
	FinalMultiplier   int64   `json:"final_multiplier"`
	TopSlotMultiplier int64   `json:"top_slot_multiplier"`
}

// CrazyTimeSpin is one spin of the bonus wheel
type CrazyTimeSpin struct {
	Segment int    `json:"segment"`
	Pocket  Pocket `json:"pocket"`
}

// CrazyTimeDetails records the marker, every spin and the final wheel
type CrazyTimeDetails struct {
	Flapper         Flapper         `json:"flapper"`
	FlapperFallback bool            `json:"flapper_fallback"`
	Spins           []CrazyTimeSpin `json:"spins"`
	FinalWheel      []Pocket        `json:"final_wheel"`
	Multiplier      int64           `json:"multiplier"`
}
