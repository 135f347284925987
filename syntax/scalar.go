package syntax

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var boolFolder = cases.Fold()

var (
	integerRe = regexp.MustCompile(`^[+-]?\d+$`)
	floatRe   = regexp.MustCompile(`^[+-]?(?:\d+\.\d+|\d+\.\d*|\.\d+)$`)
	dateRe    = regexp.MustCompile(`^([+-]?\d+)\.(\d+)\.(\d+)$`)
)

// ParseBool interprets a scalar's raw text as a case-insensitive
// yes/true/no/false literal. Returns (false, false) if text doesn't match
// any of the four spellings. Folding runs through golang.org/x/text/cases
// rather than strings.ToLower so multi-byte case pairs outside ASCII fold
// correctly too, not just plain "YES"/"yes". Ported from
// original_source/jominipy/ast/scalar.py's parse_bool.
func ParseBool(raw string) (value bool, ok bool) {
	switch boolFolder.String(raw) {
	case "yes", "true":
		return true, true
	case "no", "false":
		return false, true
	default:
		return false, false
	}
}

// ParseNumber interprets a scalar's raw text as an integer or float,
// rejecting anything with more than one decimal point (so date-shaped
// scalars like "1444.11.11" are correctly NOT read as numbers). Returns
// (nil, false) on no match. Ported from ast/scalar.py's parse_number.
func ParseNumber(raw string) (value any, ok bool) {
	if strings.Count(raw, ".") > 1 {
		return nil, false
	}
	if integerRe.MatchString(raw) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if floatRe.MatchString(raw) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	}
	return nil, false
}

// Date is a year/month/day triple parsed from a date-shaped scalar.
type Date struct {
	Year, Month, Day int
}

// ParseDateLike interprets a scalar's raw text as a "Y.M.D" date literal.
// Ported from ast/scalar.py's parse_date_like.
func ParseDateLike(raw string) (Date, bool) {
	m := dateRe.FindStringSubmatch(raw)
	if m == nil {
		return Date{}, false
	}
	year, err1 := strconv.Atoi(m[1])
	month, err2 := strconv.Atoi(m[2])
	day, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// Interpretation holds every way a scalar's raw text could be read:
// simultaneously as a bool, a number, and a date, since Clausewitz script
// has no static typing to disambiguate between them. Ported from
// ast/scalar.py's ScalarInterpretation.
type Interpretation struct {
	Bool   *bool
	Number any
	Date   *Date
}

// InterpretScalar builds an Interpretation for raw. If wasQuoted is true
// and allowQuoted is false, every field is left nil: a quoted string is
// meant literally and is not, by default, eligible for bool/number/date
// interpretation. Ported from ast/scalar.py's interpret_scalar.
func InterpretScalar(raw string, wasQuoted, allowQuoted bool) Interpretation {
	if wasQuoted && !allowQuoted {
		return Interpretation{}
	}
	var out Interpretation
	if b, ok := ParseBool(raw); ok {
		out.Bool = &b
	}
	if n, ok := ParseNumber(raw); ok {
		out.Number = n
	}
	if d, ok := ParseDateLike(raw); ok {
		out.Date = &d
	}
	return out
}
