// Package circuit implements the synchronous runtime: wires carrying
// 16-bit data, logic/arithmetic/mux/demux/fixed/input components, and
// the two-phase Tock/Tick scheduler that steps them.
//
// What & Why:
//
//	Every wire holds a Prev value (committed at the last Tock) and a
//	Next value (the accumulator components OR-write into during Tick).
//	Components never read Next or write Prev directly — that
//	discipline is what makes Tick-phase evaluation order-independent:
//	two components that both drive the same wire only ever OR into it,
//	so whichever runs first does not change the final result.
//
//	This mirrors original_source's bevy ECS systems (circuit/{wire,
//	gate,mux,demux,fixed,input,bus}.rs), translated from "systems
//	ordered after a reset system" into two explicit method calls per
//	spec.md §9's own redesign note: no scheduler/label framework is
//	needed when there are exactly two phases.
//
// Complexity:
//
//	Tock: O(wires). Tick: O(components * average pins).
package circuit

// NBChannels is the number of channels a wire's Channel can select
// and the number of words in the keyboard input buffer.
const NBChannels = 16

// DataSize is sizeof(Data) in bytes: 2. Keyboard scan codes map to a
// word (code / NBChannels) and a bit within that word
// (code % (DataSize*8)).
const DataSize = 2

// Channel is a wire's logical bus position (0..15), used by Mux,
// Demux, and Input to pick which bit of Data they read or write.
type Channel = uint8

// Data is the 16-bit unsigned word carried on every wire.
type Data = uint16

// WireID indexes into Simulator.Wires. Components reference their pins
// through a WireID, never a pointer, so the simulator can be built from
// a flat, validated schema with no aliasing concerns.
type WireID = int

// Wire is a value carrier with a channel index and the prev/next state
// the Tock/Tick schedule operates on.
type Wire struct {
	Channel Channel
	Prev    Data
	Next    Data
}

// Tock shifts every wire's committed value forward: Prev <- Next,
// Next <- 0. Tock is a global barrier — it must finish before any
// Tick-phase component reads Prev or writes Next.
func Tock(wires []Wire) {
	for i := range wires {
		wires[i].Prev = wires[i].Next
		wires[i].Next = 0
	}
}
