package privatrates

import "github.com/shopspring/decimal"

type (
	// RatePayload is one day's response from the PrivatBank archive API,
	// kept as-is until it is reshaped into a RateTable.
	RatePayload struct {
		Date            string      `json:"date"`
		Bank            string      `json:"bank"`
		BaseCurrency    int         `json:"baseCurrency"`
		BaseCurrencyLit string      `json:"baseCurrencyLit"`
		ExchangeRates   []RateEntry `json:"exchangeRate"`
	}

	// RateEntry carries both the National Bank rates (saleRateNB,
	// purchaseRateNB) and PrivatBank's own commercial rates. Only the NB
	// rates end up in the output table. Nil means the field was absent
	// upstream.
	RateEntry struct {
		BaseCurrency   string           `json:"baseCurrency"`
		Currency       string           `json:"currency"`
		SaleRateNB     *decimal.Decimal `json:"saleRateNB,omitempty"`
		PurchaseRateNB *decimal.Decimal `json:"purchaseRateNB,omitempty"`
		SaleRate       *decimal.Decimal `json:"saleRate,omitempty"`
		PurchaseRate   *decimal.Decimal `json:"purchaseRate,omitempty"`
	}

	// CurrencyRate is one currency's NB rates for one date. The zero
	// value is the "no data for this currency" record.
	CurrencyRate struct {
		Sale     *decimal.Decimal `json:"sale,omitempty"`
		Purchase *decimal.Decimal `json:"purchase,omitempty"`
	}

	// RateTable maps a single DD.MM.YYYY date to the rates of every
	// requested currency.
	RateTable map[string]map[string]CurrencyRate
)
