package integrate

// Reason identifies why an integration loop stopped (spec 4.6).
// ReasonTargetRangeReached is the normal, non-premature stop and is never
// wrapped as an error by the caller. Reason zero (ReasonNone) means no
// termination condition fired; Run never returns it.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMinVelocity
	ReasonMaxDrop
	ReasonMinAltitude
	ReasonTargetRangeReached
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMinVelocity:
		return "min_velocity"
	case ReasonMaxDrop:
		return "max_drop"
	case ReasonMinAltitude:
		return "min_altitude"
	case ReasonTargetRangeReached:
		return "target_range_reached"
	default:
		return "unknown"
	}
}

// Premature reports whether the reason represents early termination (the
// trajectory did not reach its nominal range), as opposed to a normal stop.
func (r Reason) Premature() bool {
	return r == ReasonMinVelocity || r == ReasonMaxDrop || r == ReasonMinAltitude
}
