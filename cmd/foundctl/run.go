package main

import (
	"encoding/json"
	"fmt"
	"os"

	comprehensive "Fundament/internal/calc/comprehensive"
	pressure "Fundament/internal/calc/pressure"
	settlement "Fundament/internal/calc/settlement"
)

func loadInput(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runCheck(path string, jsonOut bool) error {
	var in comprehensive.Input
	if err := loadInput(path, &in); err != nil {
		return err
	}

	res, err := comprehensive.Calculate(in)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printCheckReport(res)
	if !res.OverallCompliance {
		os.Exit(1)
	}
	return nil
}

func runSettlement(path string, jsonOut bool) error {
	var in settlement.Input
	if err := loadInput(path, &in); err != nil {
		return err
	}

	res, err := settlement.Calculate(in)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printSettlementReport(res)
	if !res.Settlement.IsCompliant || !res.Inclination.IsCompliant {
		os.Exit(1)
	}
	return nil
}

func runPressure(path string, jsonOut bool) error {
	var in pressure.Input
	if err := loadInput(path, &in); err != nil {
		return err
	}

	res, err := pressure.Calculate(in)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printPressureReport(res)
	return nil
}
