package solver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/mathai/internal/symbolic"
)

// formatRoots renders roots smallest first, comma separated. Exact
// roots keep their fraction form ("7/2"); approximate roots render as
// the shortest round-tripping decimal.
func formatRoots(sol symbolic.SolveResult) string {
	roots := append([]*symbolic.Num(nil), sol.Roots...)
	sort.Slice(roots, func(i, j int) bool { return roots[i].Rat().Cmp(roots[j].Rat()) < 0 })
	parts := make([]string, len(roots))
	for i, r := range roots {
		if sol.Exact {
			parts[i] = r.String()
		} else {
			parts[i] = r.DecimalString()
		}
	}
	return strings.Join(parts, ", ")
}

// formatNumber renders a float without trailing zeros: 24 not 24.0,
// 2.5 not 2.50.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatDecimal renders a float that always keeps its decimal point:
// 20.0 not 20. Percentage answers are reported this way so a computed
// value reads as a measurement rather than a count.
func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
