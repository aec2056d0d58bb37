// Package client provides test commands for the Skill Planner gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/skill-planner/internal/handlers/planner/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Skill Planner",
	Long:  `Client commands allow you to test the Skill Planner by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	// Catalog commands
	ClientCmd.AddCommand(listArchetypesCmd)
	ClientCmd.AddCommand(getArchetypeCmd)

	// Build commands
	ClientCmd.AddCommand(createBuildCmd)
	ClientCmd.AddCommand(getBuildCmd)
	ClientCmd.AddCommand(deleteBuildCmd)

	// Allocation commands
	ClientCmd.AddCommand(allocateCmd)
	ClientCmd.AddCommand(resetBuildCmd)
	ClientCmd.AddCommand(setLevelCmd)
	ClientCmd.AddCommand(setModeCmd)

	// Tooltip commands
	ClientCmd.AddCommand(describeSkillCmd)
}

// createPlannerClient creates a planner service client
func createPlannerClient() (v1alpha1.PlannerClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewPlannerClient(conn), cleanup, nil
}
