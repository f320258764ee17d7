package text

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CSV renders rows as RFC 4180 text. Cells are stringified with Stringify,
// embedded quotes are doubled and a cell is quoted only when it contains a
// delimiter, quote or line break. Rows are joined by "\n" with no trailing
// newline.
func CSV(rows [][]any) (string, error) {
	var buf strings.Builder

	w := csv.NewWriter(&buf)

	for i, row := range rows {
		record := make([]string, len(row))
		for j, cell := range row {
			record[j] = Stringify(cell)
		}

		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Stringify renders a value the canonical way used across gluekit:
// nil is empty, floats avoid exponent notation where possible and times are
// RFC 3339.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
