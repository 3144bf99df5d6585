package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "foundctl",
		Short: "Gravity wind-turbine foundation analysis toolkit",
	}

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(settlementCmd())
	rootCmd.AddCommand(pressureCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check [project-file]",
		Short: "Run the full foundation check suite on a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw result as JSON")
	return cmd
}

func settlementCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "settlement [input-file]",
		Short: "Compute settlement and inclination by layered summation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSettlement(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw result as JSON")
	return cmd
}

func pressureCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "pressure [input-file]",
		Short: "Compute base pressures for a load case",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPressure(args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw result as JSON")
	return cmd
}
