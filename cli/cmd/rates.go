package cmd

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"privatrates"
	"privatrates/fetchers"
	"privatrates/services"
)

func ratesCobraCommand(config *Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		days, err := strconv.Atoi(args[0])
		if err != nil {
			return &privatrates.ValidationError{
				Message: fmt.Sprintf("number of days must be an integer, got %q", args[0]),
			}
		}

		currencies := viper.GetStringSlice("currencies")

		if len(args) > 1 {
			if parsed := parseCurrencies(args[1]); len(parsed) > 0 {
				currencies = parsed
			}
		}

		fetcher := config.Fetcher

		if fetcher == nil {
			fetcher = fetchers.NewPrivatBank(&http.Client{}, viper.GetString("api-url"))
		}

		service := services.New(fetcher, newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose")))

		tables, err := service.GetExchangeRates(config.Ctx, days, currencies)
		if err != nil {
			return err
		}

		return printTables(cmd.OutOrStdout(), tables)
	}
}

func parseCurrencies(raw string) []string {
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))

	for _, part := range parts {
		code := strings.ToUpper(strings.TrimSpace(part))

		if code == "" {
			continue
		}

		codes = append(codes, code)
	}

	return codes
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

func printTables(w io.Writer, tables []privatrates.RateTable) error {
	for i, table := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		// A table holds exactly one date key.
		for date, rates := range table {
			if err := printTable(w, date, rates); err != nil {
				return err
			}
		}
	}

	return nil
}

func printTable(w io.Writer, date string, rates map[string]privatrates.CurrencyRate) error {
	codes := make([]string, 0, len(rates))

	for code := range rates {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	if _, err := fmt.Fprintf(w, "Date: %s\n", date); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CURRENCY\tSALE\tPURCHASE")

	for _, code := range codes {
		rate := rates[code]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", code, formatRate(rate.Sale), formatRate(rate.Purchase))
	}

	return tw.Flush()
}

func formatRate(value *decimal.Decimal) string {
	if value == nil {
		return "-"
	}

	return value.String()
}
