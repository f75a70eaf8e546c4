package table

// Default table dimensions and caps
const (
	// DefaultSegmentCount is the number of physical positions on the main wheel
	DefaultSegmentCount = 56

	// PachinkoCap is the highest value a Pachinko pocket may escalate to
	PachinkoCap = 10000

	// CrazyTimeCap is the highest value a Crazy Time segment may escalate to
	CrazyTimeCap = 20000

	// CashHuntGridSize is the number of cells on the Cash Hunt wall
	CashHuntGridSize = 108
)

// Display colours for bet options
const (
	ColorOne       = "#F2C94C"
	ColorTwo       = "#2F80ED"
	ColorFive      = "#EB57A5"
	ColorTen       = "#9B51E0"
	ColorCoinFlip  = "#2D9CDB"
	ColorPachinko  = "#BB6BD9"
	ColorCashHunt  = "#27AE60"
	ColorCrazyTime = "#EB5757"
)

// Error contexts
const (
	ErrContextReadTable  = "failed to read table file"
	ErrContextParseTable = "failed to parse table file"
	ErrContextBuildTable = "failed to build table"
)

// Log messages
const (
	LogMsgTableLoaded      = "Outcome table loaded"
	LogMsgTableFileMissing = "Table override file not found, using defaults"
)
