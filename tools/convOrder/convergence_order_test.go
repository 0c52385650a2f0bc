package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder(t *testing.T) {
	{ // Exact first order series: errors halve as the grid doubles
		cs := NewConvergenceStudy("linear", "godunov", 0.5)
		cs.Add(32, 1.e-2, 2.e-2)
		cs.Add(64, 5.e-3, 1.e-2)
		cs.Add(128, 2.5e-3, 5.e-3)
		assert.InDelta(t, 1.0, cs.Order(cs.l2), 1.e-12)
		assert.InDelta(t, 1.0, cs.Order(cs.linf), 1.e-12)
	}
	{ // Second order series
		cs := NewConvergenceStudy("quadratic", "ec", 0.5)
		cs.Add(32, 1.e-2, 1.e-2)
		cs.Add(64, 2.5e-3, 2.5e-3)
		assert.InDelta(t, 2.0, cs.Order(cs.l2), 1.e-12)
	}
	{ // A single entry has no slope
		cs := NewConvergenceStudy("short", "lax", 0.5)
		cs.Add(32, 1.e-2, 1.e-2)
		assert.True(t, math.IsNaN(cs.Order(cs.l2)))
	}
}
