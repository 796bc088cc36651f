// Package main provides the assistant bot CLI entry point.
// The bot keeps a contact directory in memory and answers one command per line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
