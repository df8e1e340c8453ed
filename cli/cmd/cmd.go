package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"privatrates"
	"privatrates/fetchers"
)

var (
	rootCmd = &cobra.Command{
		Use:     "privatrates <days> [comma-separated currency codes]",
		Short:   "PrivatBank historical exchange rate fetcher",
		Long:    "Fetches National Bank sale/purchase rates from the PrivatBank archive API for the last <days> days (1-10) and prints one table per date.",
		Version: "v1.0.0",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				// Errors are silenced below, so the usage line rides
				// along with the validation message.
				return &privatrates.ValidationError{
					Message: fmt.Sprintf("%v\nUsage: %s", err, cmd.UseLine()),
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	apiURL  string
	verbose bool
)

type (
	Config struct {
		Ctx context.Context
		// Fetcher replaces the HTTP fetcher when set; used by tests to
		// run the command without network access.
		Fetcher privatrates.Fetcher
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", fetchers.PrivatBankAPIURL, "Archive API endpoint")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log batch progress to stderr")

	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	// Settings come from flags and these defaults only; there is no
	// config file and no environment lookup.
	viper.SetDefault("currencies", []string{"EUR", "USD"})
}

func Execute(config *Config) error {
	cobra.OnInitialize()

	rootCmd.RunE = ratesCobraCommand(config)

	return rootCmd.Execute()
}
