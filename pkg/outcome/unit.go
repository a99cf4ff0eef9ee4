package outcome

// Unit is a zero-size payload for operations that succeed without producing
// a value. Every Unit compares equal to every other.
type Unit struct{}

// UnitValue returns the canonical Unit instance.
func UnitValue() Unit {
	return Unit{}
}
