package services

import "privatrates"

// ProcessRates reshapes one raw archive payload into a single-date rate
// table. Every requested code gets a row even when the payload has no
// entry for it; codes the caller did not ask for are dropped. Pure and
// best-effort: missing upstream fields stay nil, nothing errors.
func ProcessRates(payload *privatrates.RatePayload, currencies []string) privatrates.RateTable {
	rates := make(map[string]privatrates.CurrencyRate, len(currencies))

	for _, code := range currencies {
		rates[code] = privatrates.CurrencyRate{}
	}

	for _, entry := range payload.ExchangeRates {
		if _, wanted := rates[entry.Currency]; !wanted {
			continue
		}

		rates[entry.Currency] = privatrates.CurrencyRate{
			Sale:     entry.SaleRateNB,
			Purchase: entry.PurchaseRateNB,
		}
	}

	return privatrates.RateTable{payload.Date: rates}
}
