package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const codeInfix = "JH"

// NextReservationCode produces the next human-readable reservation code for
// today, format "YYYYMMDD-JH###". lastCode is the most recent code sharing
// today's date prefix, or empty when today has no reservations yet. A suffix
// that cannot be parsed restarts the sequence at 001 instead of failing.
func NextReservationCode(today time.Time, lastCode string) string {
	seq := 1
	if lastCode != "" {
		marker := "-" + codeInfix
		if i := strings.LastIndex(lastCode, marker); i >= 0 {
			if n, err := strconv.Atoi(lastCode[i+len(marker):]); err == nil {
				seq = n + 1
			}
		}
	}
	return fmt.Sprintf("%s-%s%03d", today.Format("20060102"), codeInfix, seq)
}
