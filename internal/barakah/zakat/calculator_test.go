package zakat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	th := Threshold{Cash: 17800, Gold: 17800, Silver: 1380}

	t.Run("above nisab pays 2.5 percent of total", func(t *testing.T) {
		res := Calculate(AssetDeclaration{"cash": 20000, "gold": 0, "silver": 0}, th)
		require.Equal(t, 20000.0, res.Total)
		require.Equal(t, 1380.0, res.Nisab)
		require.Equal(t, 500.0, res.Payable)
	})

	t.Run("below nisab pays nothing", func(t *testing.T) {
		res := Calculate(AssetDeclaration{"cash": 1000}, th)
		require.Equal(t, 1380.0, res.Nisab)
		require.Zero(t, res.Payable)
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		res := Calculate(AssetDeclaration{"cash": 1380}, th)
		require.Equal(t, 1380*Rate, res.Payable)
	})

	t.Run("all-zero assets", func(t *testing.T) {
		res := Calculate(AssetDeclaration{"cash": 0, "gold": 0}, th)
		require.Zero(t, res.Total)
		require.Zero(t, res.Payable)
	})

	t.Run("nisab is min of gold and silver, never cash", func(t *testing.T) {
		res := Calculate(nil, Threshold{Cash: 100, Gold: 24000, Silver: 1400})
		require.Equal(t, 1400.0, res.Nisab)

		res = Calculate(nil, Threshold{Cash: 100, Gold: 900, Silver: 1400})
		require.Equal(t, 900.0, res.Nisab)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		assets := AssetDeclaration{"cash": 12345.67, "investments": 89.01}
		first := Calculate(assets, th)
		second := Calculate(assets, th)
		require.Equal(t, first, second)
	})

	t.Run("monotonic non-decreasing in total", func(t *testing.T) {
		totals := []float64{0, 500, 1379.99, 1380, 5000, 100000}
		prev := -1.0
		for _, total := range totals {
			res := Calculate(AssetDeclaration{"cash": total}, th)
			require.GreaterOrEqual(t, res.Payable, prev, "total=%v", total)
			prev = res.Payable
		}
	})
}

func TestSanitizeAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain number", "1234.5", 1234.5},
		{"leading whitespace", "  42", 42},
		{"negative coerces to zero", "-10", 0},
		{"non-numeric coerces to zero", "abc", 0},
		{"empty coerces to zero", "", 0},
		{"nan coerces to zero", "NaN", 0},
		{"infinity coerces to zero", "+Inf", 0},
		{"zero stays zero", "0", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SanitizeAmount(tc.raw))
		})
	}
}
