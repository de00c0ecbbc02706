// Package guard validates command requests before any side effect occurs.
//
// Validation is a pure function over the parsed request: no I/O, no
// mutation. Rules live in an explicit ordered table and are evaluated in
// a fixed order so rejections are deterministic; the first violation is
// reported. Interactivity and the managed-list size are supplied by the
// caller as part of the request context, never detected here.
package guard

import "fmt"

// Workflow selects between the binary-repo and source-build workflows.
type Workflow int

const (
	Repo Workflow = iota
	Source
)

// Action identifies the requested operation.
type Action string

const (
	ActionSearch   Action = "search"
	ActionInfo     Action = "info"
	ActionFiles    Action = "files"
	ActionProvides Action = "provides"
	ActionAdd      Action = "add"
	ActionRemove   Action = "rm"
	ActionUpgrade  Action = "up"

	ActionSrcSearch Action = "src search"
	ActionSrcBuild  Action = "src build"
	ActionSrcClean  Action = "src clean"
	ActionSrcLint   Action = "src lint"
	ActionSrcAdd    Action = "src add"
	ActionSrcUpdate Action = "src up"
)

// Request is the parsed intent of one invocation.
type Request struct {
	Workflow Workflow
	Action   Action
	Targets  []string

	Yes     bool
	Force   bool
	Rebuild bool
	All     bool
	DryRun  bool

	// Interactive reports whether the invocation can prompt the user.
	Interactive bool

	// ManagedCount is the size of the managed list, for --all requests.
	ManagedCount int
}

// AmbiguousIntentError rejects flag combinations with no single meaning.
type AmbiguousIntentError struct {
	Flags []string
}

func (e *AmbiguousIntentError) Error() string {
	return fmt.Sprintf("use either --%s or --%s, not both", e.Flags[0], e.Flags[1])
}

// ConfirmationRequiredError rejects destructive actions that cannot prompt.
type ConfirmationRequiredError struct {
	Action Action
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("`vx %s` is destructive and stdin is not a terminal; pass -y to confirm", e.Action)
}

// NothingManagedError rejects --all updates with an empty managed list,
// instead of reporting a silent no-op as success.
type NothingManagedError struct{}

func (e *NothingManagedError) Error() string {
	return "no managed source packages; install one with `vx src add <pkg>`"
}

// MissingTargetError rejects actions that need a package name.
type MissingTargetError struct {
	Action Action
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("`vx %s` needs at least one package name (or --all where supported)", e.Action)
}

// destructive actions must be confirmable: either an interactive terminal
// or an explicit -y.
var destructive = map[Action]bool{
	ActionRemove:    true,
	ActionUpgrade:   true,
	ActionSrcClean:  true,
	ActionSrcUpdate: true,
}

// requiresTarget actions operate on named packages.
var requiresTarget = map[Action]bool{
	ActionSearch:    true,
	ActionInfo:      true,
	ActionFiles:     true,
	ActionProvides:  true,
	ActionAdd:       true,
	ActionRemove:    true,
	ActionSrcSearch: true,
	ActionSrcBuild:  true,
	ActionSrcClean:  true,
	ActionSrcLint:   true,
	ActionSrcAdd:    true,
	ActionSrcUpdate: true,
}

// allCapable actions accept --all in place of explicit targets.
var allCapable = map[Action]bool{
	ActionUpgrade:   true,
	ActionSrcUpdate: true,
}

type rule struct {
	name  string
	check func(Request) error
}

// rules are evaluated in order; the first violation is reported.
var rules = []rule{
	{
		name: "ambiguous intent",
		check: func(r Request) error {
			if r.Action == ActionSrcAdd && r.Force && r.Rebuild {
				return &AmbiguousIntentError{Flags: []string{"force", "rebuild"}}
			}
			return nil
		},
	},
	{
		name: "confirmation required",
		check: func(r Request) error {
			if destructive[r.Action] && !r.Yes && !r.Interactive && !r.DryRun {
				return &ConfirmationRequiredError{Action: r.Action}
			}
			return nil
		},
	},
	{
		name: "nothing managed",
		check: func(r Request) error {
			if r.All && allCapable[r.Action] && r.ManagedCount == 0 {
				return &NothingManagedError{}
			}
			return nil
		},
	},
	{
		name: "missing target",
		check: func(r Request) error {
			if requiresTarget[r.Action] && len(r.Targets) == 0 && !r.All {
				return &MissingTargetError{Action: r.Action}
			}
			return nil
		},
	},
}

// Validate checks a request against the rule table.
func Validate(r Request) error {
	for _, rule := range rules {
		if err := rule.check(r); err != nil {
			return err
		}
	}
	return nil
}
