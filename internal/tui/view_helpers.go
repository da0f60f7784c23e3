package tui

import (
	"strconv"
	"strings"
)

const emptyList = "(none)"

// field is one "Label: value" line of a record.
type field struct {
	label string
	value string
}

func renderRecords(records [][]field) string {
	if len(records) == 0 {
		return emptyList
	}

	var b strings.Builder
	for i, record := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, f := range record {
			b.WriteString(f.label)
			b.WriteString(": ")
			b.WriteString(f.value)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func boolWord(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// maskTail hides every digit except the last four. Separators are kept so
// the shape of the number stays recognisable.
func maskTail(v string) string {
	digits := 0
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits <= 4 {
		return valueOrDash(v)
	}

	hide := digits - 4
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' && hide > 0 {
			b.WriteRune('*')
			hide--
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
