package ops_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// structural kinds have no rule-table entry: the engine implements them.
var structural = map[ops.Kind]bool{
	ops.SumReduce:   true,
	ops.Get:         true,
	ops.Range:       true,
	ops.FromScalars: true,
	ops.Concat:      true,
	ops.Softmax:     true,
	ops.Reshape:     true,
}

func TestKinds_EveryKindHasExactlyOneRule(t *testing.T) {
	for _, k := range ops.Kinds() {
		_, unary := ops.Unary(k)
		_, binary := ops.Binary(k)
		if structural[k] {
			assert.False(t, unary || binary, "%s is structural", k)
			continue
		}
		assert.True(t, unary != binary, "%s: unary=%v binary=%v", k, unary, binary)
	}
}

func TestKind_String(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range ops.Kinds() {
		name := k.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "sin", ops.Sin.String())
	assert.Equal(t, "leaf", ops.Leaf.String())
	assert.Equal(t, "unknown", ops.Kind(250).String())
}

// TestUnary_TensorVariantMatchesScalar tests that both halves of every unary
// rule compute the same contributions, and that the tensor half accumulates.
func TestUnary_TensorVariantMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, k := range ops.Kinds() {
		rule, ok := ops.Unary(k)
		if !ok {
			continue
		}
		n := 5
		x, y, dy, acc := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
		for i := range x {
			x[i] = 0.1 + 0.8*rng.Float64() // (0.1, 0.9) is inside every domain but acosh's
			if k == ops.Acosh {
				x[i] += 1.2
			}
			y[i] = rule.Forward(x[i])
			dy[i] = rng.Float64() - 0.5
			acc[i] = 1
		}
		rule.Tensor(x, y, dy, acc)
		for i := range x {
			assert.InDelta(t, 1+rule.Scalar(x[i], y[i], dy[i]), acc[i], 1e-12, "%s element %d", k, i)
		}
	}
}

func TestBinary_TensorVariantMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for _, k := range ops.Kinds() {
		rule, ok := ops.Binary(k)
		if !ok {
			continue
		}
		n := 4
		a, b, y, dy := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
		accA, accB := make([]float64, n), make([]float64, n)
		for i := range a {
			a[i], b[i] = 0.5+rng.Float64(), 0.5+rng.Float64()
			y[i] = rule.Forward(a[i], b[i])
			dy[i] = rng.Float64()
		}
		rule.TensorA(a, b, y, dy, accA)
		rule.TensorB(a, b, y, dy, accB)
		for i := range a {
			assert.InDelta(t, rule.ScalarA(a[i], b[i], y[i], dy[i]), accA[i], 1e-12, "%s/a", k)
			assert.InDelta(t, rule.ScalarB(a[i], b[i], y[i], dy[i]), accB[i], 1e-12, "%s/b", k)
		}
	}
}

func TestRules_ClosedForms(t *testing.T) {
	sigmoid, ok := ops.Unary(ops.Sigmoid)
	require.True(t, ok)
	assert.Equal(t, 0.5, sigmoid.Forward(0))
	assert.Equal(t, 0.25, sigmoid.Scalar(0, 0.5, 1))
	assert.InDelta(t, 0.0, sigmoid.Forward(-800), 1e-300, "no overflow for large negative inputs")

	abs, _ := ops.Unary(ops.Abs)
	assert.Equal(t, -2.0, abs.Scalar(-3, 3, 2))
	assert.Equal(t, 0.0, abs.Scalar(0, 0, 2))

	div, _ := ops.Binary(ops.Div)
	assert.Equal(t, 0.5, div.ScalarA(3, 2, 1.5, 1))
	assert.Equal(t, -0.75, div.ScalarB(3, 2, 1.5, 1))

	pow, _ := ops.Binary(ops.Pow)
	assert.Equal(t, 0.0, pow.ScalarB(-2, 2, 4, 1), "log of a negative base")
	assert.InDelta(t, 8*math.Log(2), pow.ScalarB(2, 3, 8, 1), 1e-12)

	floor, _ := ops.Unary(ops.Floor)
	acc := []float64{1, 2}
	floor.Tensor([]float64{0.5, 1.5}, []float64{0, 1}, []float64{3, 3}, acc)
	assert.Equal(t, []float64{1, 2}, acc)
}

func TestMinMax_TieBreaking(t *testing.T) {
	minRule, _ := ops.Binary(ops.Min)
	maxRule, _ := ops.Binary(ops.Max)

	assert.Equal(t, 1.0, minRule.ScalarA(2, 2, 2, 1))
	assert.Equal(t, 0.0, minRule.ScalarB(2, 2, 2, 1))
	assert.Equal(t, 1.0, maxRule.ScalarA(2, 2, 2, 1))
	assert.Equal(t, 0.0, maxRule.ScalarB(2, 2, 2, 1))

	assert.Equal(t, 0.0, minRule.ScalarA(3, 2, 2, 1))
	assert.Equal(t, 1.0, minRule.ScalarB(3, 2, 2, 1))
	assert.Equal(t, 0.0, maxRule.ScalarA(1, 2, 2, 1))
	assert.Equal(t, 1.0, maxRule.ScalarB(1, 2, 2, 1))
}
