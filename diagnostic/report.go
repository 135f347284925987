package diagnostic

// Collect flattens several diagnostic groups (e.g. lexer diagnostics and
// parser diagnostics) into one list, preserving group and within-group
// order. Ported from original_source/jominipy/diagnostics/report.py's
// collect_diagnostics.
func Collect(groups ...[]Diagnostic) []Diagnostic {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]Diagnostic, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// HasErrors reports whether any diagnostic in diags is SeverityError.
// Ported from original_source/jominipy/diagnostics/report.py's has_errors.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
