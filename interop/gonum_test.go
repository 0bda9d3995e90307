package interop_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/interop"
	"github.com/katalvlaran/densemat/matrix"
)

func randomDense(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) // keep it comfortably invertible
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestToGonumCopies(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	g := interop.ToGonum(m)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	g.Set(0, 0, 100) // independent storage
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestRoundTrip(t *testing.T) {
	m := randomDense(t, 5, 3)
	back, err := interop.FromGonum(interop.ToGonum(m))
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

func TestFromGonumTransposeView(t *testing.T) {
	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := interop.FromGonum(g.T())
	require.NoError(t, err)

	want, err := matrix.NewFromRows([][]float64{{1, 4}, {2, 5}, {3, 6}})
	require.NoError(t, err)
	require.True(t, want.Equal(m))
}

func TestEmptyConversions(t *testing.T) {
	require.True(t, interop.ToGonum(matrix.NewEmpty()).IsEmpty())
	require.True(t, interop.ToGonum(nil).IsEmpty())

	m, err := interop.FromGonum(&mat.Dense{})
	require.NoError(t, err)
	require.True(t, m.IsEmpty())

	m, err = interop.FromGonum(nil)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
}

// TestDeterminantAgreesWithGonum cross-checks cofactor expansion against LU.
func TestDeterminantAgreesWithGonum(t *testing.T) {
	for n := 1; n <= 7; n++ {
		m := randomDense(t, n, int64(10+n))
		got, err := m.Determinant()
		require.NoError(t, err)
		want := mat.Det(interop.ToGonum(m))
		require.InEpsilon(t, want, got, 1e-9, "n=%d", n)
	}
}

// TestInverseAgreesWithGonum cross-checks the adjugate inverse against gonum.
func TestInverseAgreesWithGonum(t *testing.T) {
	for n := 1; n <= 6; n++ {
		m := randomDense(t, n, int64(20+n))
		got, err := m.Inverse()
		require.NoError(t, err)

		var ginv mat.Dense
		require.NoError(t, ginv.Inverse(interop.ToGonum(m)))
		want, err := interop.FromGonum(&ginv)
		require.NoError(t, err)
		require.True(t, want.Equal(got), "n=%d\nwant:\n%s\ngot:\n%s", n, want, got)
	}
}

// TestProductAgreesWithGonum cross-checks the naive triple loop on a non-square pair.
func TestProductAgreesWithGonum(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	b, err := matrix.NewFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	require.NoError(t, err)

	got, err := matrix.Product(a, b)
	require.NoError(t, err)

	var g mat.Dense
	g.Mul(interop.ToGonum(a), interop.ToGonum(b))
	want, err := interop.FromGonum(&g)
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}
