package circuit

// Simulator owns every wire and component of one instantiated circuit
// exclusively; models and the schema that produced them are read-only
// and shared by index elsewhere.
type Simulator struct {
	Wires      []Wire
	Components []Component
	Input      *InputDevice
}

// New constructs a Simulator over the given wires and components. The
// caller is responsible for having validated the schema these were
// built from — a validated schema guarantees every pin resolves, so
// Tick never needs to report an error.
func New(wires []Wire, components []Component, input *InputDevice) *Simulator {
	return &Simulator{Wires: wires, Components: components, Input: input}
}

// Tock runs the commit phase: every wire's Prev becomes its old Next,
// and Next is zeroed. Tock must complete before Tick begins.
func (s *Simulator) Tock() {
	Tock(s.Wires)
}

// Tick runs the evaluate phase: every component reads Prev off its
// input wires and OR-accumulates into Next on its output wires.
// Evaluation order across components is unspecified and must be (and
// is, by the OR-write discipline) commutative.
func (s *Simulator) Tick() {
	for _, c := range s.Components {
		c.Eval(s.Wires)
	}
}

// Step runs one full Tock-then-Tick cycle.
func (s *Simulator) Step() {
	s.Tock()
	s.Tick()
}

// RunTicks runs n Tock/Tick steps, draining any KeyEvents available on
// events into the input device during each Tock. This is the ambient
// host-runtime driving loop the spec leaves unspecified: a plain
// synchronous loop, since the spec's Non-goals exclude asynchronous or
// event-driven evaluation.
func (s *Simulator) RunTicks(n int, events <-chan KeyEvent) {
	for i := 0; i < n; i++ {
		s.Tock()
		drainEvents(s.Input, events)
		s.Tick()
	}
}

func drainEvents(dev *InputDevice, events <-chan KeyEvent) {
	if events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			dev.Apply(ev)
		default:
			return
		}
	}
}
