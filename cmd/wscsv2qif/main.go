// Package main is the entry point for the wscsv2qif CLI.
package main

import (
	"os"

	"github.com/zimuliu/WealthSimpleCSV2QIF/cmd/wscsv2qif/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
