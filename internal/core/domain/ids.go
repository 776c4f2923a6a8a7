package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Counter names and id prefixes for sequentially numbered records.
const (
	CounterCaseFile = "expediente"
	CounterOther    = "otro"
	CounterUser     = "usuario"

	PrefixCaseFile = "EXP"
	PrefixOther    = "DOC"
	PrefixUser     = "USR"

	SequenceWidth = 3
)

// Timestamp layouts kept compatible with the records already in the store.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ClientIDFromName derives a client id from its display name:
// "  Juan   Pérez " -> "JUAN-PÉREZ".
func ClientIDFromName(name string) string {
	return strings.ToUpper(whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-"))
}

// SequenceID formats a counter value as PREFIX-NNN.
func SequenceID(prefix string, value int64, width int) string {
	return fmt.Sprintf("%s-%0*d", prefix, width, value)
}

// FoldKey normalises a value for case-insensitive uniqueness checks.
func FoldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }
