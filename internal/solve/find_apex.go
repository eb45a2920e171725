package solve

import (
	"github.com/ballistics-core/engine/internal/config"
	"github.com/ballistics-core/engine/internal/integrate"
	"github.com/ballistics-core/engine/internal/shot"
	"github.com/ballistics-core/engine/internal/trajectory"
)

// FindApex integrates with the minimum-velocity floor lifted and resolves
// the point where vertical velocity crosses zero (spec 4.9.4).
func FindApex(props *shot.Props, cfg config.Config) (trajectory.Row, error) {
	working := props.Clone()
	iterCfg := cfg
	iterCfg.MinimumVelocityFps = 0

	seq, _ := integrate.Run(working, iterCfg, integrate.MethodEuler, unboundedRangeFt, 0, nil)

	sample, err := seq.Interpolate(trajectory.KeyVelY, 0, props.LookAngleRad)
	if err != nil {
		return trajectory.Row{}, err
	}

	row := trajectory.NewRow(sample, props.WeightGr, props.SpinDriftFt(sample.TimeS), props.LookAngleRad, trajectory.FlagApex)
	return row, nil
}
