package harness

import (
	"fmt"
	"github.com/elliotchance/orderedmap/v2"
	"io"
)

// Check - A labelled predicate, a check passes when Predicate returns true
type Check struct {
	Label     string
	Predicate func() bool
}

// Result - Outcome of running a Suite
//   - Passed is the number of checks that passed
//   - Total is the number of checks run
//   - Failures holds the label of every failed check, with the panic message if the check panicked
type Result struct {
	Passed   int
	Total    int
	Failures []string
}

// OK - Returns true if every check passed
func (R Result) OK() bool {
	return R.Passed == R.Total
}

// Suite - Checks grouped in named sections, sections and checks run in the order they were added. Checks within a
// section may share state and rely on running in order.
type Suite struct {
	sections *orderedmap.OrderedMap[string, []Check]
}

// NewSuite - Returns a pointer to a new, empty Suite
func NewSuite() *Suite {
	return &Suite{sections: orderedmap.NewOrderedMap[string, []Check]()}
}

// Add - Appends checks to section, the section is created on first use
func (S *Suite) Add(section string, checks ...Check) {
	existing, _ := S.sections.Get(section)
	S.sections.Set(section, append(existing, checks...))
}

// Sections - Returns the section names in run order
func (S *Suite) Sections() []string {
	return S.sections.Keys()
}

// Run - Runs every check, writing a coloured line per check and the totals to w
func (S *Suite) Run(w io.Writer) (result Result) {
	for el := S.sections.Front(); el != nil; el = el.Next() {
		_, _ = fmt.Fprintf(w, "\n%s\n", SectionStyle.Render(el.Key))

		for _, check := range el.Value {
			result.Total++

			ok, panicMsg := evaluate(check)
			switch {
			case panicMsg != "":
				_, _ = fmt.Fprintln(w, FailStyle.Render(fmt.Sprintf("✗ %s: Panic raised: %s", check.Label, panicMsg)))
				result.Failures = append(result.Failures, fmt.Sprintf("%s: %s", check.Label, panicMsg))
			case ok:
				_, _ = fmt.Fprintln(w, PassStyle.Render(fmt.Sprintf("✓ %s: Passed", check.Label)))
				result.Passed++
			default:
				_, _ = fmt.Fprintln(w, FailStyle.Render(fmt.Sprintf("✗ %s: Failed", check.Label)))
				result.Failures = append(result.Failures, check.Label)
			}
		}
	}

	style := PassStyle
	if !result.OK() {
		style = FailStyle
	}
	_, _ = fmt.Fprintf(w, "\n%s %s\n", SectionStyle.Render("Tests Passed"),
		style.Render(fmt.Sprintf("%d/%d", result.Passed, result.Total)))

	return
}

// evaluate - Runs the predicate of check, a panic is turned into a failure carrying the panic message
func evaluate(check Check) (ok bool, panicMsg string) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			panicMsg = fmt.Sprint(r)
		}
	}()

	ok = check.Predicate()

	return
}
