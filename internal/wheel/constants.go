package wheel

// Log messages
const (
	LogMsgForcedLabelMissing = "Forced label has no matching segment, falling back to uniform draw"
	LogMsgForcedLeftMissing  = "Forced top slot label not on reel, falling back to uniform draw"
	LogMsgForcedRightMissing = "Forced top slot multiplier not on reel, falling back to uniform draw"
)
