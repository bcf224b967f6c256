package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase, 0 when unknown
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	ResolveInputs Phase = iota
	FetchPages
)

func (p Phase) String() string {
	switch p {
	case ResolveInputs:
		return "resolve_inputs"
	case FetchPages:
		return "fetch_pages"
	default:
		return ""
	}
}

// sendProgress sends an update without blocking; updates are dropped when the channel is full.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func resolvedUpdate(step, total int, res BatchResult) ProgressUpdate {
	msg := fmt.Sprintf("resolved %q as %s", res.Input, res.Reference)
	if res.Err != nil {
		msg = fmt.Sprintf("failed to resolve %q: %v", res.Input, res.Err)
	}
	return ProgressUpdate{Phase: ResolveInputs, Step: step, Total: total, Message: msg, Data: res}
}

func pageUpdate(step, total, videos int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPages,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("fetched page %d (%d videos)", step, videos),
	}
}
