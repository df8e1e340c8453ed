package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"privatrates"
)

func dec(t *testing.T, value string) *decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	require.NoError(t, err)

	return &d
}

func TestProcessRates(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	payload := &privatrates.RatePayload{
		Date: "01.01.2024",
		ExchangeRates: []privatrates.RateEntry{
			{Currency: "USD", SaleRateNB: dec(t, "38.5"), PurchaseRateNB: dec(t, "38.0")},
			{Currency: "XYZ", SaleRateNB: dec(t, "1.0"), PurchaseRateNB: dec(t, "1.0")},
		},
	}

	t.Run("RequestedCurrenciesAlwaysPresent", func(t *testing.T) {
		table := ProcessRates(payload, []string{"USD", "EUR"})

		asserts.Len(table, 1)
		asserts.Contains(table, "01.01.2024")

		rates := table["01.01.2024"]

		asserts.Len(rates, 2)
		asserts.Equal("38.5", rates["USD"].Sale.String())
		asserts.Equal("38", rates["USD"].Purchase.String())

		// EUR is absent upstream, so the row is empty but present.
		asserts.Contains(rates, "EUR")
		asserts.Nil(rates["EUR"].Sale)
		asserts.Nil(rates["EUR"].Purchase)
	})

	t.Run("UnrequestedCurrenciesExcluded", func(t *testing.T) {
		table := ProcessRates(payload, []string{"USD", "EUR"})

		asserts.NotContains(table["01.01.2024"], "XYZ")
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := ProcessRates(payload, []string{"USD", "EUR"})
		second := ProcessRates(payload, []string{"USD", "EUR"})

		asserts.Equal(first, second)
	})

	t.Run("MissingRateFieldsStayAbsent", func(t *testing.T) {
		partial := &privatrates.RatePayload{
			Date: "02.01.2024",
			ExchangeRates: []privatrates.RateEntry{
				{Currency: "USD", SaleRateNB: dec(t, "38.5")},
			},
		}

		rates := ProcessRates(partial, []string{"USD"})["02.01.2024"]

		asserts.Equal("38.5", rates["USD"].Sale.String())
		asserts.Nil(rates["USD"].Purchase)
	})
}
