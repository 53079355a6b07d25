package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	f, err := NewFormatter("BRL", "pt-BR")
	require.NoError(t, err)

	out := f.Format(decimal.RequireFromString("179.9"))

	require.Contains(t, out, "R$")
	require.Contains(t, out, "179")
	require.Equal(t, "BRL", f.Currency())
}

func TestFormatUSD(t *testing.T) {
	f, err := NewFormatter("USD", "en-US")
	require.NoError(t, err)

	out := f.Format(decimal.RequireFromString("1234.5"))

	require.Contains(t, out, "$")
	require.Contains(t, out, "234")
}

func TestNewFormatterRejectsUnknown(t *testing.T) {
	_, err := NewFormatter("XXXX", "pt-BR")
	require.Error(t, err)

	_, err = NewFormatter("BRL", "not a locale!")
	require.Error(t, err)
}
