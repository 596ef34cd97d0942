package player

import "strings"

// Position is a free-form categorical label such as "Gelandang Tengah" or "MF".
// Values are normalized at ingestion so comparisons never depend on casing or spacing.
type Position string

func NormalizePosition(raw string) Position {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return Position(strings.ToUpper(strings.Join(fields, " ")))
}

func (p Position) IsZero() bool {
	return p == ""
}

func (p Position) String() string {
	return string(p)
}
