// Package catalog declares every remote procedure the client knows how to
// issue: its ordered parameter list, defaults, and the existence guard
// protecting it. The table is validated once at init, so a malformed
// declaration is a programming error caught at startup, not a runtime
// surprise discovered mid-run.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"panelops/wfctl/internal/api"
)

// Guard states what the existence check must report before the remote
// call is issued.
type Guard int

const (
	// GuardNone issues the call unconditionally.
	GuardNone Guard = iota

	// GuardAbsent requires that no matching record exists (creates).
	GuardAbsent

	// GuardPresent requires that exactly one matching record exists
	// (deletes, updates, password changes).
	GuardPresent
)

// Param is one positional parameter of a remote procedure, in the order
// the remote service expects after the session token.
type Param struct {
	Name string

	// Default is sent when the caller omits the parameter. Ignored when
	// Required is set.
	Default any

	// Required marks a parameter the caller must supply.
	Required bool

	// Join collapses a list value into one comma-separated string, for
	// procedures that take an address list as a single string field.
	Join bool

	// Variadic expands a list value into separate trailing positional
	// arguments. Only valid on the final parameter.
	Variadic bool
}

// Operation describes one remote procedure.
type Operation struct {
	// Name is both the action name callers use and the remote procedure
	// name on the wire.
	Name string

	// Kind is the resource noun used in guard messages ("mailbox",
	// "email address", ...). Empty for list-style and unguarded calls.
	Kind string

	Params []Param
	Guard  Guard

	// List is the remote procedure whose records the guard checks.
	List string

	// Keys names the parameters whose values form the guard candidate.
	Keys []string
}

// Lookup finds an operation by action name.
func Lookup(action string) (Operation, bool) {
	op, ok := operations[strings.TrimSpace(action)]
	return op, ok
}

// Actions returns all action names, sorted.
func Actions() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildArgs resolves a caller's named arguments into the ordered positional
// list the remote procedure expects. Unknown names, missing required
// parameters, and list-shaped values where scalars belong all come back as
// *api.ArgumentError.
func (op Operation) BuildArgs(args map[string]any) ([]any, error) {
	known := make(map[string]struct{}, len(op.Params))
	for _, param := range op.Params {
		known[param.Name] = struct{}{}
	}
	for name := range args {
		if _, ok := known[name]; !ok {
			return nil, &api.ArgumentError{Op: op.Name, Message: fmt.Sprintf("unknown parameter %q", name)}
		}
	}

	ordered := make([]any, 0, len(op.Params))
	for _, param := range op.Params {
		value, supplied := args[param.Name]
		if !supplied {
			if param.Required {
				return nil, &api.ArgumentError{Op: op.Name, Message: fmt.Sprintf("missing required parameter %q", param.Name)}
			}
			value = param.Default
		}

		switch {
		case param.Join:
			joined, err := joinList(op.Name, param.Name, value)
			if err != nil {
				return nil, err
			}
			ordered = append(ordered, joined)
		case param.Variadic:
			items, err := listItems(op.Name, param.Name, value)
			if err != nil {
				return nil, err
			}
			ordered = append(ordered, items...)
		default:
			ordered = append(ordered, value)
		}
	}
	return ordered, nil
}

// Candidate builds the existence-check candidate from the guard's key
// parameters. Key parameters are always required, so the values are taken
// straight from the caller's arguments.
func (op Operation) Candidate(args map[string]any) map[string]any {
	candidate := make(map[string]any, len(op.Keys))
	for _, key := range op.Keys {
		candidate[key] = args[key]
	}
	return candidate
}

// Identifier renders the guard key values for use in messages, e.g. the
// mailbox name a rejected create was aimed at.
func (op Operation) Identifier(args map[string]any) string {
	parts := make([]string, 0, len(op.Keys))
	for _, key := range op.Keys {
		parts = append(parts, fmt.Sprint(args[key]))
	}
	return strings.Join(parts, "/")
}

func joinList(op, param string, value any) (string, error) {
	switch items := value.(type) {
	case string:
		return items, nil
	case []string:
		return strings.Join(items, ", "), nil
	case []any:
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", "), nil
	default:
		return "", &api.ArgumentError{Op: op, Message: fmt.Sprintf("parameter %q must be a string or list, got %T", param, value)}
	}
}

func listItems(op, param string, value any) ([]any, error) {
	switch items := value.(type) {
	case nil:
		return nil, nil
	case []any:
		return items, nil
	case []string:
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = item
		}
		return out, nil
	case string:
		return []any{items}, nil
	default:
		return nil, &api.ArgumentError{Op: op, Message: fmt.Sprintf("parameter %q must be a list, got %T", param, value)}
	}
}

// validate panics on a malformed declaration; run from init.
func validate() {
	for action, op := range operations {
		if op.Name != action {
			panic(fmt.Sprintf("catalog: operation %q declared under key %q", op.Name, action))
		}
		paramNames := make(map[string]struct{}, len(op.Params))
		for i, param := range op.Params {
			if param.Name == "" {
				panic(fmt.Sprintf("catalog: %s: unnamed parameter at position %d", action, i))
			}
			if _, dup := paramNames[param.Name]; dup {
				panic(fmt.Sprintf("catalog: %s: duplicate parameter %q", action, param.Name))
			}
			paramNames[param.Name] = struct{}{}
			if param.Variadic && i != len(op.Params)-1 {
				panic(fmt.Sprintf("catalog: %s: variadic parameter %q must be last", action, param.Name))
			}
		}
		if op.Guard == GuardNone {
			continue
		}
		if op.List == "" || len(op.Keys) == 0 || op.Kind == "" {
			panic(fmt.Sprintf("catalog: %s: guarded operation needs list, keys, and kind", action))
		}
		if _, ok := operations[op.List]; !ok {
			panic(fmt.Sprintf("catalog: %s: guard list %q is not a declared operation", action, op.List))
		}
		for _, key := range op.Keys {
			if _, ok := paramNames[key]; !ok {
				panic(fmt.Sprintf("catalog: %s: guard key %q is not a parameter", action, key))
			}
		}
	}
}

func init() {
	validate()
}
