package autodiff_test

import (
	"testing"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Scenario(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Tensor(tensor.Vector(10, 20, 30))

	y := autodiff.Get(x, 1)
	assert.Equal(t, 20.0, y.Float())

	autodiff.Backward(y)
	assert.Equal(t, []float64{0, 1, 0}, grad(t, x))
}

func TestGet_OutOfRange_Panics(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Tensor(tensor.Vector(1, 2, 3))

	assert.Panics(t, func() { autodiff.Get(x, 3) })
	assert.Panics(t, func() { autodiff.Get(x, -1) })
	assert.Panics(t, func() { autodiff.Range(x, 2, 4) })
	assert.Panics(t, func() { autodiff.Range(x, 2, 2) })
}

func TestRange_ScattersIntoSpan(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Tensor(tensor.Vector(1, 2, 3, 4, 5))

	r := autodiff.Range(x, 1, 4)
	assert.Equal(t, []float64{2, 3, 4}, r.Value().Tensor().Data())

	w := autodiff.Tensor(tensor.Vector(1, 10, 100))
	autodiff.Backward(autodiff.Dot(r, w))
	assert.Equal(t, []float64{0, 1, 10, 100, 0}, grad(t, x))
}

func TestConcatSplit_RoundTrip(t *testing.T) {
	tape := autodiff.NewTape()
	data := []float64{1, 2, 3, 4, 5, 6}
	x := tape.Tensor(tensor.Vector(data...))

	parts := autodiff.Split(x, 1, 3, 2)
	require.Len(t, parts, 3)
	joined := autodiff.Concat(parts...)
	assert.Equal(t, data, joined.Value().Tensor().Data())

	// Identity Jacobian: the seed comes back unchanged.
	seed := tensor.Vector(0.5, -1, 2, 3, -4, 7)
	joined.Node().AccumulateGrad(tensor.FromTensor(seed))
	autodiff.BackwardFrom(joined)
	assert.Equal(t, seed.Data(), grad(t, x))
}

func TestConcat_SkipsConstants(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Tensor(tensor.Vector(1, 2))
	c := autodiff.Tensor(tensor.Vector(3, 4, 5))
	b := tape.Tensor(tensor.Vector(6))

	y := autodiff.Concat(a, c, b)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, y.Value().Tensor().Data())
	assert.Len(t, y.Node().Parents(), 2)

	autodiff.Backward(autodiff.Dot(y, autodiff.Tensor(tensor.Vector(1, 2, 3, 4, 5, 6))))
	assert.Equal(t, []float64{1, 2}, grad(t, a))
	assert.Equal(t, []float64{6}, grad(t, b))
}

func TestFromScalars_RoutesToScalarParents(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Scalar(1)
	b := tape.Scalar(2)

	v := autodiff.FromScalars(a, autodiff.Scalar(9), b)
	assert.Equal(t, []float64{1, 9, 2}, v.Value().Tensor().Data())

	autodiff.Backward(autodiff.Dot(v, autodiff.Tensor(tensor.Vector(10, 20, 30))))
	assert.Equal(t, 10.0, a.Grad().Float())
	assert.Equal(t, 30.0, b.Grad().Float())

	assert.Panics(t, func() { autodiff.FromScalars() })
	assert.Panics(t, func() { autodiff.FromScalars(a, autodiff.Tensor(tensor.Vector(1))) })
}

func TestToScalars(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Tensor(tensor.Vector(3, 4))

	s := autodiff.ToScalars(x)
	require.Len(t, s, 2)
	autodiff.Backward(autodiff.Mul(s[0], s[1]))
	assert.Equal(t, []float64{4, 3}, grad(t, x))
}

func TestReshape_AliasesGradient(t *testing.T) {
	tape := autodiff.NewTape()
	n := tape.Tensor(tensor.Vector(0, 1, 2, 3, 4, 5))

	view := autodiff.Reshape(n, 2, 3)
	require.True(t, view.IsVariable())
	assert.Equal(t, tensor.Shape{2, 3}, view.Value().Tensor().Shape())
	assert.True(t, view.Value().Tensor().SharesStorage(n.Value().Tensor()))

	view.Grad().Tensor().Set(7, 1, 2)
	assert.Equal(t, 7.0, grad(t, n)[5])

	grad(t, n)[0] = -3
	assert.Equal(t, -3.0, view.Grad().Tensor().At(0, 0))
}

func TestReshape_GradientFlowsToSource(t *testing.T) {
	tape := autodiff.NewTape()
	n := tape.Tensor(tensor.Vector(1, 2, 3, 4))

	view := autodiff.Reshape(n, 2, 2)
	loss := autodiff.Add(
		autodiff.SumReduce(autodiff.Square(view)),
		autodiff.SumReduce(n),
	)
	autodiff.Backward(loss)

	assert.Equal(t, []float64{3, 5, 7, 9}, grad(t, n))
}

func TestReshape_Invalid_Panics(t *testing.T) {
	tape := autodiff.NewTape()
	n := tape.Tensor(tensor.Vector(1, 2, 3, 4))

	assert.Panics(t, func() { autodiff.Reshape(n, 3) })
	assert.Panics(t, func() { autodiff.Reshape(tape.Scalar(1), 1) })
}

func TestSoftmax_SumsToOne(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Tensor(tensor.Vector(1, 2, 3))

	y := autodiff.Softmax(x)
	assert.InDelta(t, 1.0, y.Value().Tensor().Sum(), 1e-12)

	// A uniform output gradient projects to zero on the simplex.
	autodiff.Backward(y)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, grad(t, x), 1e-12)
}

func TestSoftmax_JacobianVectorProduct(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Tensor(tensor.Vector(0.5, -1, 2))

	y := autodiff.Softmax(x)
	autodiff.Backward(autodiff.Get(y, 0))

	p := y.Value().Tensor().Data()
	want := []float64{p[0] * (1 - p[0]), -p[0] * p[1], -p[0] * p[2]}
	assert.InDeltaSlice(t, want, grad(t, x), 1e-12)
}
