package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"privatrates"
)

// PrivatBankAPIURL is the public archive endpoint; no API key required.
const PrivatBankAPIURL = "https://api.privatbank.ua/p24api/exchange_rates"

type (
	PrivatBankFetcher struct {
		URL    string
		Client *http.Client
	}
)

func NewPrivatBank(client *http.Client, rawURL string) *PrivatBankFetcher {
	if client == nil {
		client = &http.Client{}
	}

	if rawURL == "" {
		rawURL = PrivatBankAPIURL
	}

	return &PrivatBankFetcher{
		URL:    rawURL,
		Client: client,
	}
}

// Fetch retrieves the archive payload for one DD.MM.YYYY date. It does
// not retry, cache or log; errors are typed for the caller to classify.
func (f *PrivatBankFetcher) Fetch(ctx context.Context, date string) (*privatrates.RatePayload, error) {
	// The endpoint takes a bare "json" flag, so the query is built from
	// the template directly instead of through url.Values.
	reqURL := fmt.Sprintf("%s?json&date=%s", f.URL, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &privatrates.NetworkError{Err: err}
	}

	req.Header.Add("Accept", "application/json")

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, &privatrates.NetworkError{Err: err}
	}

	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, &privatrates.DataError{StatusCode: res.StatusCode}
	}

	var payload privatrates.RatePayload

	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, &privatrates.NetworkError{Err: err}
	}

	return &payload, nil
}
