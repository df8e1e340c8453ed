package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"privatrates"
)

const (
	MinDays = 1
	MaxDays = 10
)

type (
	Service struct {
		Fetcher privatrates.Fetcher
		Logger  logrus.FieldLogger
		// Now is the clock used to derive the date range.
		Now func() time.Time
	}
)

func New(fetcher privatrates.Fetcher, logger logrus.FieldLogger) *Service {
	return &Service{
		Fetcher: fetcher,
		Logger:  logger,
		Now:     time.Now,
	}
}

// GetExchangeRates fetches the rates for the last days dates (today
// included) concurrently and reshapes them into one table per date,
// today first. Dates whose payload carries no rate entries are warned
// about and left out; any fetch error fails the whole batch.
func (s *Service) GetExchangeRates(ctx context.Context, days int, currencies []string) ([]privatrates.RateTable, error) {
	if days < MinDays || days > MaxDays {
		return nil, &privatrates.ValidationError{
			Message: fmt.Sprintf("number of days must be between %d and %d, got %d", MinDays, MaxDays, days),
		}
	}

	logger := s.Logger.WithField("batch_id", uuid.NewString())

	now := s.now()
	dates := make([]string, days)

	for i := range dates {
		dates[i] = now.AddDate(0, 0, -i).Format(privatrates.DateLayout)
	}

	logger.Debugf("fetching exchange rates for %d dates, %s back to %s", days, dates[0], dates[days-1])

	// A plain group keeps the join all-or-nothing without cancelling
	// in-flight siblings: every request resolves before Wait returns,
	// and the first error wins. The slice is index-addressed so the
	// gathered order is the dispatch order regardless of completion
	// order.
	payloads := make([]*privatrates.RatePayload, len(dates))

	var group errgroup.Group

	for i, date := range dates {
		i, date := i, date

		group.Go(func() error {
			payload, err := s.Fetcher.Fetch(ctx, date)
			if err != nil {
				return err
			}

			payloads[i] = payload

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	tables := make([]privatrates.RateTable, 0, len(payloads))

	for _, payload := range payloads {
		if payload == nil || len(payload.ExchangeRates) == 0 {
			logger.Warnf("no exchange rate data for %s", dateLabel(payload))
			continue
		}

		tables = append(tables, ProcessRates(payload, currencies))
	}

	logger.Debugf("collected %d of %d rate tables", len(tables), days)

	return tables, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

func dateLabel(payload *privatrates.RatePayload) string {
	if payload == nil || payload.Date == "" {
		return "unknown date"
	}

	return payload.Date
}
