package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/crystal-cavern/internal/core"
)

// scriptEntry holds one action over an inclusive tick window. to < 0 means
// the action stays on until the end of the run.
type scriptEntry struct {
	action   core.Action
	from, to int
}

// inputScript is a parsed --input value.
type inputScript []scriptEntry

// parseScript parses a comma-separated list of action[@from[-[to]]] items:
//
//	right         held for the whole run
//	jump@30       pressed on tick 30 only
//	shoot@40-60   held from tick 40 to 60
//	left@100-     held from tick 100 on
func parseScript(s string) (inputScript, error) {
	var script inputScript
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, window, hasWindow := strings.Cut(item, "@")
		action, ok := core.ParseAction(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown action %q in %q", name, item)
		}

		entry := scriptEntry{action: action, from: 0, to: -1}
		if hasWindow {
			from, to, err := parseWindow(window)
			if err != nil {
				return nil, fmt.Errorf("bad tick window in %q: %w", item, err)
			}
			entry.from, entry.to = from, to
		}
		script = append(script, entry)
	}
	return script, nil
}

func parseWindow(w string) (int, int, error) {
	lo, hi, isRange := strings.Cut(w, "-")
	from, err := strconv.Atoi(lo)
	if err != nil || from < 0 {
		return 0, 0, fmt.Errorf("invalid start tick %q", lo)
	}
	if !isRange {
		return from, from, nil
	}
	if hi == "" {
		return from, -1, nil
	}
	to, err := strconv.Atoi(hi)
	if err != nil || to < from {
		return 0, 0, fmt.Errorf("invalid end tick %q", hi)
	}
	return from, to, nil
}

// frame returns the input for the given tick.
func (s inputScript) frame(tick int) core.InputFrame {
	f := core.NewInputFrame()
	for _, e := range s {
		if tick >= e.from && (e.to < 0 || tick <= e.to) {
			f.Set(e.action)
		}
	}
	return f
}
