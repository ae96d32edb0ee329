package domain

import (
	m "classmark.dev/pkg/classmark/internal/model"
)

// Rule names the classifier condition that fired for a method.
type Rule string

const (
	// RuleNone means the method is considered hand-written.
	RuleNone Rule = ""
	// RuleDescriptor fires when the front end flagged the declaration as
	// synthesized, or the structural origin itself is synthetic (bridge
	// methods with no declaration at all).
	RuleDescriptor Rule = "synthesized by descriptor"
	// RuleAssociation fires when the method derives from a property or a
	// constructor parameter, whose accessor bodies the compiler generates.
	RuleAssociation Rule = "synthesized by association"
)

// Classify decides whether a method-definition event describes a
// compiler-generated method. It is a pure function of the origin: the
// descriptor rule is checked first, then the association rule; either firing
// is sufficient.
//
// This is a heuristic, not a proof. It deliberately treats every property-
// and parameter-derived method as synthesized, including hand-written
// accessor bodies, and may misjudge unusual compiler lowering.
func Classify(origin m.Origin) Rule {
	if origin.Kind == m.OriginSynthetic {
		return RuleDescriptor
	}

	declaration := origin.Declaration
	if declaration == nil {
		return RuleNone
	}

	if declaration.Synthesized {
		return RuleDescriptor
	}

	if declaration.Kind == m.DeclProperty || declaration.Kind == m.DeclParameter {
		return RuleAssociation
	}

	return RuleNone
}

// Synthesized reports whether any classifier rule fires for the origin.
func Synthesized(origin m.Origin) bool {
	return Classify(origin) != RuleNone
}
