package privatrates

import "context"

// DateLayout is the DD.MM.YYYY form the archive API expects in the date
// query parameter and returns in the payload's date field.
const DateLayout = "02.01.2006"

type (
	Fetcher interface {
		Fetch(ctx context.Context, date string) (*RatePayload, error)
	}
)
