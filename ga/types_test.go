package ga_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/simplicial/ga"
	"github.com/stretchr/testify/assert"
)

type member struct{ genes []float64 }

func validCallbacks() ga.Callbacks[member] {
	return ga.Callbacks[member]{
		GenerateRandom: func(m *member) { m.genes = []float64{0} },
		Mutate:         func(m *member, generation int64) {},
		Tweak:          func(m *member) {},
		Suitability:    func(m *member) float64 { return 0 },
	}
}

// TestCallbacks_Validate reports each missing callback.
func TestCallbacks_Validate(t *testing.T) {
	assert.NoError(t, validCallbacks().Validate())

	cases := map[string]func(*ga.Callbacks[member]){
		"GenerateRandom": func(c *ga.Callbacks[member]) { c.GenerateRandom = nil },
		"Mutate":         func(c *ga.Callbacks[member]) { c.Mutate = nil },
		"Tweak":          func(c *ga.Callbacks[member]) { c.Tweak = nil },
		"Suitability":    func(c *ga.Callbacks[member]) { c.Suitability = nil },
	}
	for name, drop := range cases {
		t.Run(name, func(t *testing.T) {
			cb := validCallbacks()
			drop(&cb)
			err := cb.Validate()
			assert.ErrorIs(t, err, ga.ErrMissingCallback)
			assert.Contains(t, err.Error(), name)
		})
	}
}

// TestOptions_Validate covers each bound.
func TestOptions_Validate(t *testing.T) {
	good := ga.Options{PopulationSize: 20, SuitabilityTarget: 1, EliteCount: 4, Timeout: time.Second}
	assert.NoError(t, good.Validate())

	cases := map[string]func(*ga.Options){
		"population":   func(o *ga.Options) { o.PopulationSize = 0 },
		"elite zero":   func(o *ga.Options) { o.EliteCount = 0 },
		"elite > pop":  func(o *ga.Options) { o.EliteCount = 21 },
		"target NaN":   func(o *ga.Options) { o.SuitabilityTarget = math.NaN() },
		"zero timeout": func(o *ga.Options) { o.Timeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			o := good
			mutate(&o)
			assert.ErrorIs(t, o.Validate(), ga.ErrBadOptions)
		})
	}
}
