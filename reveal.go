package api2md

// RevealAction describes how a reveal heuristic expands a matched element.
type RevealAction int

const (
	// RevealClick simulates a user activation on the element.
	RevealClick RevealAction = iota

	// RevealOpen sets the native disclosure open state directly
	// (details elements) instead of clicking.
	RevealOpen
)

// RevealHeuristic identifies one class of collapse/expand affordance.
// Exactly one of CSS or XPath is set: CSS for structural selectors, XPath
// for visible-text matches that CSS cannot express.
type RevealHeuristic struct {
	Name   string
	CSS    string
	XPath  string
	Action RevealAction
}

// DefaultRevealHeuristics returns the ordered list of expansion heuristics.
// Documentation UIs hide parameter tables and code samples behind
// arbitrary widget conventions, so the list trades precision for coverage;
// heuristics are tried in order and individual failures are tolerated.
func DefaultRevealHeuristics() []RevealHeuristic {
	return []RevealHeuristic{
		{Name: "aria-collapsed-button", CSS: `button[aria-expanded="false"]`, Action: RevealClick},
		{Name: "expand-all", CSS: `.expand-all`, Action: RevealClick},
		{Name: "data-toggle-collapse", CSS: `[data-toggle="collapse"]`, Action: RevealClick},
		{Name: "collapse-toggle", CSS: `.collapse-toggle`, Action: RevealClick},
		{Name: "closed-details", CSS: `details:not([open])`, Action: RevealOpen},
		{Name: "accordion-toggle", CSS: `.accordion-toggle`, Action: RevealClick},
		{Name: "aria-label-expand", CSS: `[aria-label*="expand" i]`, Action: RevealClick},
		{Name: "title-expand", CSS: `[title*="expand" i]`, Action: RevealClick},
		{Name: "button-text-expand", XPath: buttonTextXPath("button", "expand"), Action: RevealClick},
		{Name: "button-text-show", XPath: buttonTextXPath("button", "show"), Action: RevealClick},
		{Name: "link-text-expand", XPath: buttonTextXPath("a", "expand"), Action: RevealClick},
		{Name: "btn-expand", CSS: `.btn-expand`, Action: RevealClick},
	}
}

// buttonTextXPath builds a case-insensitive visible-text containment match,
// the XPath 1.0 equivalent of the :has-text() pseudo-selector.
func buttonTextXPath(tag, text string) string {
	return `//` + tag +
		`[contains(translate(normalize-space(.), 'ABCDEFGHIJKLMNOPQRSTUVWXYZ', 'abcdefghijklmnopqrstuvwxyz'), '` +
		text + `')]`
}

// RevealAttempt records the outcome of running one heuristic against a
// page. Per-element failures (timeout, detachment, not interactable) are
// swallowed and counted rather than raised, so partial-failure tolerance
// is an explicit contract.
type RevealAttempt struct {
	// Heuristic is the name of the heuristic that ran.
	Heuristic string

	// Matched is the number of elements the heuristic selected.
	Matched int

	// Expanded is the number of elements successfully expanded.
	Expanded int

	// Err is set when the heuristic failed wholesale (bad selector,
	// page gone). It never aborts the remaining heuristics.
	Err error
}

// RevealObserverFunc receives the outcome of each reveal heuristic as it
// completes. Observers must not block.
type RevealObserverFunc func(RevealAttempt)
