package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/goruuvi/pkg/ruuvi"
)

var (
	rootCmd = &cobra.Command{
		Use:   "goruuvi-analyze [hex]",
		Short: "Decode RuuviTag advertisements",
		Long:  "goruuvi-analyze decodes RuuviTag manufacturer-specific data using the goruuvi library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ruuvi.AnalyzeOptions{
				CompanyIDHex:      companyHex,
				PrefixedCompanyID: prefixed,
			}
			if len(args) == 0 {
				return runInteractive(opts)
			}
			return runAnalyze(opts, args[0])
		},
	}

	companyHex string
	prefixed   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&companyHex, "company", "", "Bluetooth company id as 4 hex digits (default 0499)")
	rootCmd.PersistentFlags().BoolVar(&prefixed, "prefixed", false, "payload starts with the little-endian company id")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(opts ruuvi.AnalyzeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("goruuvi analyze mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runAnalyze(opts ruuvi.AnalyzeOptions, hex string) error {
	result, err := ruuvi.AnalyzeHexWithOptions(hex, opts)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
