package tester

// Predicate decides whether a DynamicRegistry supports a target. Predicates
// run on every lookup and should be cheap.
type Predicate interface {
	Match(target any) bool
}

// PredicateFunc adapts a function to Predicate.
type PredicateFunc func(target any) bool

// Match implements Predicate.
func (f PredicateFunc) Match(target any) bool {
	return f(target)
}

// Implements returns a Predicate that matches targets implementing I.
func Implements[I any]() Predicate {
	return PredicateFunc(func(target any) bool {
		_, ok := target.(I)
		return ok
	})
}

// And returns a Predicate that matches when all predicates match.
func And(ps ...Predicate) Predicate {
	return and{ps: ps}
}

type and struct {
	ps []Predicate
}

func (p and) Match(target any) bool {
	for _, pred := range p.ps {
		if !pred.Match(target) {
			return false
		}
	}
	return true
}

// Or returns a Predicate that matches when any predicate matches.
func Or(ps ...Predicate) Predicate {
	return or{ps: ps}
}

type or struct {
	ps []Predicate
}

func (p or) Match(target any) bool {
	for _, pred := range p.ps {
		if pred.Match(target) {
			return true
		}
	}
	return false
}

// Not returns a Predicate that matches when p does not.
func Not(p Predicate) Predicate {
	return PredicateFunc(func(target any) bool {
		return !p.Match(target)
	})
}
