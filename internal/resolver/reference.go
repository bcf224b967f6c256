package resolver

import (
	"fmt"
)

// Kind is the entity type a [Reference] points at.
type Kind int

const (
	Unknown Kind = iota
	Channel
	Video
)

func (k Kind) String() string {
	switch k {
	case Channel:
		return "channel"
	case Video:
		return "video"
	default:
		return "unknown"
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "channel":
		*k = Channel
	case "video":
		*k = Video
	case "unknown", "":
		*k = Unknown
	default:
		return fmt.Errorf("unknown reference kind %q", text)
	}
	return nil
}

// Reference identifies a channel or a video. ID is empty when Kind is [Unknown].
type Reference struct {
	Kind Kind   `json:"type"`
	ID   string `json:"id"`
}

// Known reports whether the reference names an entity callers can fetch.
func (r Reference) Known() bool {
	return r.Kind != Unknown && r.ID != ""
}

func (r Reference) String() string {
	if !r.Known() {
		return Unknown.String()
	}
	return r.Kind.String() + ":" + r.ID
}

// normalize enforces the Unknown-has-no-ID invariant.
func (r Reference) normalize() Reference {
	if !r.Known() {
		return Reference{}
	}
	return r
}
