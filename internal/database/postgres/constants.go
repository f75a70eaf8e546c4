package postgres

// Error Messages - Round log
const (
	ErrMsgFailedToMarshalRound   = "failed to marshal round record"
	ErrMsgFailedToUnmarshalRound = "failed to unmarshal round record"
	ErrMsgFailedToInsertRound    = "failed to insert round"
	ErrMsgFailedToQueryRounds    = "failed to query rounds"
)

// Test container settings
const (
	TestPostgresImage    = "postgres:15-alpine"
	TestDatabaseName     = "testdb"
	TestDatabaseUser     = "testuser"
	TestDatabasePassword = "testpass"
)
