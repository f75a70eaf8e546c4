package simulator

// Limits
const (
	MaxRounds           = 10_000_000
	ContextCheckEvery   = 1024
	DefaultReportPlaces = 4
)

// Log messages
const (
	LogMsgSimulationStarted  = "Simulation started"
	LogMsgSimulationFinished = "Simulation finished"
	LogMsgSinkFailed         = "Simulation sink rejected round"
)

// Error messages
const (
	ErrMsgInvalidRounds = "rounds must be between 1 and %d"
	ErrMsgUnknownLabel  = "unknown bet label %q"
	ErrMsgNegativeStake = "stake on %q must not be negative"
	ErrContextReplay    = "replay diverged"
	ErrContextCancelled = "simulation cancelled"
)
