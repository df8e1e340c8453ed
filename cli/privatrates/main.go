package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"privatrates"
	"privatrates/cli/cmd"
)

func main() {
	if err := cmd.Execute(&cmd.Config{Ctx: context.Background()}); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

// userMessage turns an error into the single categorized line the user
// sees: validation problems read as plain errors, anything the upstream
// did wrong (bad status or transport failure) as network errors,
// everything else as unexpected.
func userMessage(err error) string {
	var (
		validationErr *privatrates.ValidationError
		dataErr       *privatrates.DataError
		networkErr    *privatrates.NetworkError
	)

	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Error: %v", err)
	case errors.As(err, &dataErr), errors.As(err, &networkErr):
		return fmt.Sprintf("Network error: %v", err)
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}
