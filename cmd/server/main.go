// Package main is the entry point for the skill planner gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-planner/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "skill-planner",
	Short: "Skill Planner gRPC Server",
	Long:  `Skill Planner provides a gRPC interface for planning skill point builds across four job stages.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
