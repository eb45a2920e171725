package ballistics

import (
	"fmt"

	"github.com/ballistics-core/engine/internal/integrate"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/trajectory"
)

// RangeError is spec 7's RangeError: the integrator stopped before reaching
// the requested range, carrying the reason and the partial trajectory. It
// is not raised as a Go error from Integrate — it rides inside HitResult,
// matching the source's "not fatal at the engine level" framing (spec 7) —
// but it implements error so a caller that does want to treat it as a
// failure can do so without a type switch.
type RangeError struct {
	Reason  integrate.Reason
	Partial *trajectory.Seq
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ballistics: integration terminated early (%s)", e.Reason)
}

// HitResult is the Engine API's integrate() return value (spec 6.1): the
// shot snapshot, the filtered rows, optionally the dense sequence, the
// filter-flag set used, and an optional RangeError.
type HitResult struct {
	Shot     *shot.Props
	Rows     []trajectory.Row
	Dense    *trajectory.Seq
	Flags    trajectory.Flag
	RangeErr *RangeError
}

// Warnings reports the side-channel diagnostics spec 7 calls warnings:
// above-troposphere extrapolation and clamped-temperature readings
// encountered at the stored samples: the dense sequence when present,
// otherwise only the filtered rows. These are derived lazily from the
// stored samples rather than threaded through the integrator, since they
// are a read-only function of altitude and the shot's atmosphere.
func (h *HitResult) Warnings() []string {
	var aboveTroposphere, temperatureClamped bool

	check := func(altitudeFt float64) {
		reading := h.Shot.Atmo.At(altitudeFt)
		if reading.AboveTroposphere {
			aboveTroposphere = true
		}
		if reading.TemperatureClamped {
			temperatureClamped = true
		}
	}

	if h.Dense != nil {
		for _, s := range h.Dense.All() {
			check(h.Shot.Alt0Ft + s.Position.Y)
		}
	} else {
		for _, r := range h.Rows {
			check(h.Shot.Alt0Ft + r.Position.Y)
		}
	}

	var warnings []string
	if aboveTroposphere {
		warnings = append(warnings, "above_troposphere")
	}
	if temperatureClamped {
		warnings = append(warnings, "temperature_clamped")
	}
	return warnings
}
