package mi

// Test-only exports of counting internals, so counts_test.go can verify the
// joint tensor's invariants without widening the public API.

var (
	ExtractCodes = extractCodes
	JointCounts  = jointCounts
	CountIndex   = countIndex
)
