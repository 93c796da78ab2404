// Package cellname validates cell names and converts between the base-26
// column label and its numeric index.
package cellname

import (
	"fmt"
	"regexp"
)

// cellPattern matches a single cell name: one or more uppercase letters
// (the column) followed by one or more digits (the 1-based row).
var cellPattern = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// IsValid reports whether s is a well-formed cell name.
func IsValid(s string) bool {
	return cellPattern.MatchString(s)
}

// Split breaks a validated cell name into its column label and row number.
func Split(cell string) (col string, row int, ok bool) {
	m := cellPattern.FindStringSubmatch(cell)
	if m == nil {
		return "", 0, false
	}
	n, err := parseRow(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}

func parseRow(digits string) (int, error) {
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 0, fmt.Errorf("cellname: row must be positive, got %q", digits)
	}
	return n, nil
}

// ColumnToNumber converts a base-26 column label (A=1, Z=26, AA=27, ...)
// into its 1-based numeric index.
func ColumnToNumber(col string) int {
	n := 0
	for _, r := range col {
		n = n*26 + int(r-'A'+1)
	}
	return n
}

// NumberToColumn converts a 1-based numeric column index back into its
// base-26 label.
func NumberToColumn(n int) string {
	if n <= 0 {
		return ""
	}
	var digits []byte
	for n > 0 {
		n--
		digits = append(digits, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Make builds a cell name from a column number and row number.
func Make(colNum, row int) string {
	return fmt.Sprintf("%s%d", NumberToColumn(colNum), row)
}
