package kernel

// RedefinitionRule decides whether a depended-upon or labeled node of kind
// from may be redefined to produce kind to.
type RedefinitionRule interface {
	Allow(from, to Kind) bool
}

// RuleFunc adapts a function to RedefinitionRule.
type RuleFunc func(from, to Kind) bool

// Allow calls f.
func (f RuleFunc) Allow(from, to Kind) bool { return f(from, to) }

// SameClass allows redefinitions that keep the kind.
func SameClass() RedefinitionRule {
	return RuleFunc(func(from, to Kind) bool { return from == to })
}

// OneWay allows exactly the change from → to, not its reverse.
func OneWay(from, to Kind) RedefinitionRule {
	return RuleFunc(func(f, t Kind) bool { return f == from && t == to })
}

// Reject refuses every redefinition of a depended-upon or labeled node.
func Reject() RedefinitionRule {
	return RuleFunc(func(Kind, Kind) bool { return false })
}

// AnyOf evaluates rules in order; the first rule that allows the change wins.
func AnyOf(rules ...RedefinitionRule) RedefinitionRule {
	return RuleFunc(func(from, to Kind) bool {
		for _, r := range rules {
			if r != nil && r.Allow(from, to) {
				return true
			}
		}

		return false
	})
}

// DefaultRule keeps the kind, or drops the third dimension of a point or
// vector.
func DefaultRule() RedefinitionRule {
	return AnyOf(
		SameClass(),
		OneWay(KindPoint3D, KindPoint),
		OneWay(KindVector3D, KindVector),
	)
}
