package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-planner/internal/handlers/planner/v1alpha1"
)

var (
	createLevel      int
	createFourthOnly bool
	createSnapshot   string
)

var createBuildCmd = &cobra.Command{
	Use:   "create-build [archetype-id]",
	Short: "Create a build for an archetype",
	Long: `Create a build, optionally restoring a saved snapshot. Examples:

  create-build 112 --level 70
  create-build 412 --snapshot saved.json`,
	Args: cobra.ExactArgs(1),
	RunE: createBuild,
}

var getBuildCmd = &cobra.Command{
	Use:   "get-build [build-id]",
	Short: "Show a build",
	Args:  cobra.ExactArgs(1),
	RunE:  getBuild,
}

var deleteBuildCmd = &cobra.Command{
	Use:   "delete-build [build-id]",
	Short: "Delete a build",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteBuild,
}

func init() {
	createBuildCmd.Flags().IntVar(&createLevel, "level", 0, "character level (defaults to the archetype's base level)")
	createBuildCmd.Flags().BoolVar(&createFourthOnly, "fourth-only", false, "plan only the 4th stage")
	createBuildCmd.Flags().StringVar(&createSnapshot, "snapshot", "", "JSON snapshot file to restore")
}

func createBuild(cmd *cobra.Command, args []string) error {
	archetypeID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid archetype id %q: %w", args[0], err)
	}

	req := &v1alpha1.CreateBuildRequest{
		ArchetypeID:    archetypeID,
		CharacterLevel: createLevel,
		FourthOnly:     createFourthOnly,
	}

	if createSnapshot != "" {
		raw, err := os.ReadFile(createSnapshot)
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		var snapshot v1alpha1.Snapshot
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return fmt.Errorf("failed to parse snapshot: %w", err)
		}
		req.Snapshot = &snapshot
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateBuild(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create build: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fmt.Println("Build created!")
	printBuild(resp.Build)
	return nil
}

func getBuild(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetBuild(ctx, &v1alpha1.GetBuildRequest{BuildID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get build: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	printBuild(resp.Build)
	return nil
}

func deleteBuild(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteBuild(ctx, &v1alpha1.DeleteBuildRequest{BuildID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete build: %w", err)
	}

	fmt.Printf("Build %s deleted\n", args[0])
	return nil
}
