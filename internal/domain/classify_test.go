package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "classmark.dev/pkg/classmark/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		origin m.Origin
		rule   Rule
	}{
		{
			name: "explicit function is hand-written",
			origin: m.Origin{
				Declaration: &m.Declaration{Name: "doWork", Kind: m.DeclFunction},
				Kind:        m.OriginExplicit,
			},
			rule: RuleNone,
		},
		{
			name: "front-end flagged function is synthesized by descriptor",
			origin: m.Origin{
				Declaration: &m.Declaration{Name: "copy", Kind: m.DeclFunction, Synthesized: true},
				Kind:        m.OriginExplicit,
			},
			rule: RuleDescriptor,
		},
		{
			name:   "bridge method without declaration is synthesized by descriptor",
			origin: m.Origin{Kind: m.OriginSynthetic},
			rule:   RuleDescriptor,
		},
		{
			name: "property accessor is synthesized by association",
			origin: m.Origin{
				Declaration: &m.Declaration{Name: "x", Kind: m.DeclProperty},
				Kind:        m.OriginExplicit,
			},
			rule: RuleAssociation,
		},
		{
			name: "constructor parameter accessor is synthesized by association",
			origin: m.Origin{
				Declaration: &m.Declaration{Name: "value", Kind: m.DeclParameter},
				Kind:        m.OriginExplicit,
			},
			rule: RuleAssociation,
		},
		{
			name: "flagged property hits the descriptor rule first",
			origin: m.Origin{
				Declaration: &m.Declaration{Name: "x", Kind: m.DeclProperty, Synthesized: true},
				Kind:        m.OriginExplicit,
			},
			rule: RuleDescriptor,
		},
		{
			name: "synthetic origin wins even with an explicit declaration",
			origin: m.Origin{
				Declaration: &m.Declaration{Name: "doWork", Kind: m.DeclFunction},
				Kind:        m.OriginSynthetic,
			},
			rule: RuleDescriptor,
		},
		{
			name:   "explicit origin without declaration is hand-written",
			origin: m.Origin{Kind: m.OriginExplicit},
			rule:   RuleNone,
		},
		{
			name: "field declaration is hand-written",
			origin: m.Origin{
				Declaration: &m.Declaration{Name: "x", Kind: m.DeclField},
				Kind:        m.OriginExplicit,
			},
			rule: RuleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rule, Classify(tt.origin))
			assert.Equal(t, tt.rule != RuleNone, Synthesized(tt.origin))
		})
	}
}
