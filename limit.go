package limits

// State is the evaluated state of a Limit.
type State int64

const (
	Falsy State = iota
	Truthy
)

// State strings for HTTP headers and metric labels
var stateStrings = map[State]string{
	Truthy: "Truthy",
	Falsy:  "Falsy",
}

func (s State) String() string {
	return stateStrings[s]
}

func stateOf(ok bool) State {
	if ok {
		return Truthy
	}
	return Falsy
}

// Limit is a named, ordered AND of conditions. Limits are created by a Registry
// and never change afterwards.
type Limit struct {
	name       string
	conditions []Condition
}

func newLimit(name string, conds []Condition) *Limit {
	copied := make([]Condition, len(conds))
	copy(copied, conds)

	return &Limit{name: name, conditions: copied}
}

// Name returns the name the Limit is registered under.
func (l *Limit) Name() string {
	return l.name
}

// Conditions returns a copy of the Limit's conditions in evaluation order.
func (l *Limit) Conditions() []Condition {
	out := make([]Condition, len(l.conditions))
	copy(out, l.conditions)
	return out
}

// Len returns the number of conditions.
func (l *Limit) Len() int {
	return len(l.conditions)
}
