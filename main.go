// Package main is the entry point for the lolmetrics CLI tool, which fetches
// professional League of Legends telemetry and computes team scouting views.
package main

import "github.com/riftlab/go-lol-metrics/cmd"

func main() {
	cmd.Execute()
}
