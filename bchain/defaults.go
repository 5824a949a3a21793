package bchain

import (
	"bytes"
	"encoding/json"
)

var jsonNull = json.RawMessage("null")

// IsUnset returns true if the argument is the JSON null marking an omitted optional argument
func IsUnset(v json.RawMessage) bool {
	return len(v) == 0 || bytes.Equal(bytes.TrimSpace(v), jsonNull)
}

// HandleDefaults shapes the positional argument list of a call with optional arguments.
//
// defaults are aligned to the last len(defaults) elements of args:
//
//	arg1 arg2 arg3 arg4
//	          def1 def2
//
// Unset optional arguments followed by a supplied one are replaced by their default,
// unset trailing optional arguments are dropped. Arguments without a default are required.
// HandleDefaults panics if len(defaults) > len(args) or if an unset argument
// must be filled and has no default.
func HandleDefaults(args []json.RawMessage, defaults []json.RawMessage) []json.RawMessage {
	if len(defaults) > len(args) {
		ContractViolationf("%d defaults for %d arguments", len(defaults), len(args))
	}
	// pass over the optional arguments backwards, fill in defaults once a supplied optional argument was seen
	last := -1
	for i := 0; i < len(defaults); i++ {
		ai := len(args) - 1 - i
		di := len(defaults) - 1 - i
		if IsUnset(args[ai]) {
			if last >= 0 {
				if IsUnset(defaults[di]) {
					ContractViolationf("missing default for argument %d", ai)
				}
				args[ai] = defaults[di]
			}
		} else if last < 0 {
			last = ai
		}
	}
	if last >= 0 {
		return args[:last+1]
	}
	return args[:len(args)-len(defaults)]
}
