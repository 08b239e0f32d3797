// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

func TestOptions_Defaults(t *testing.T) {
	o := sparse.NewOptions()
	require.Equal(t, sparse.DefaultEpsilon, o.Epsilon())
	require.Equal(t, sparse.DefaultValidateNaNInf, o.ValidatesNaNInf())
}

func TestOptions_LastWins(t *testing.T) {
	o := sparse.NewOptions(sparse.WithEpsilon(1e-6), sparse.WithNoValidateNaNInf(), nil, sparse.WithEpsilon(1e-3))
	require.Equal(t, 1e-3, o.Epsilon())
	require.False(t, o.ValidatesNaNInf())

	o = sparse.NewOptions(sparse.WithNoValidateNaNInf(), sparse.WithValidateNaNInf())
	require.True(t, o.ValidatesNaNInf())
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { sparse.WithEpsilon(eps) })
	}
	require.NotPanics(t, func() { sparse.WithEpsilon(0) })
}
