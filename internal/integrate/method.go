package integrate

// Method selects which fixed-step integration scheme advances the point-mass
// ODE (spec 4.6).
type Method int

const (
	// MethodEuler advances with a ground-frame step derived from calc_step
	// and the current speed (spec 4.6, "Euler").
	MethodEuler Method = iota
	// MethodRK4 advances with a fixed time step, four velocity and position
	// stages per step (spec 4.6, "RK4").
	MethodRK4
)
