package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-planner/internal/handlers/planner/v1alpha1"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate [build-id] [skill-id] [action]",
	Short: "Change one skill's level",
	Long: `Apply increase, decrease, zero or master to a skill. Examples:

  allocate build_123 1001004 increase
  allocate build_123 1001004 master`,
	Args: cobra.ExactArgs(3),
	RunE: allocate,
}

var resetBuildCmd = &cobra.Command{
	Use:   "reset-build [build-id]",
	Short: "Set every skill of a build back to 0",
	Args:  cobra.ExactArgs(1),
	RunE:  resetBuild,
}

var setLevelCmd = &cobra.Command{
	Use:   "set-level [build-id] [character-level]",
	Short: "Change a build's character level",
	Args:  cobra.ExactArgs(2),
	RunE:  setLevel,
}

var setModeCmd = &cobra.Command{
	Use:   "set-mode [build-id] [full|fourth-only]",
	Short: "Switch between full and 4th-stage-only planning",
	Args:  cobra.ExactArgs(2),
	RunE:  setMode,
}

func allocate(cmd *cobra.Command, args []string) error {
	skillID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid skill id %q: %w", args[1], err)
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Allocate(ctx, &v1alpha1.AllocateRequest{
		BuildID: args[0],
		SkillID: skillID,
		Action:  args[2],
	})
	if err != nil {
		return fmt.Errorf("failed to allocate: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	if !resp.Applied {
		fmt.Println("Not applied: the skill is locked, capped, or out of points")
	}
	printBuild(resp.Build)
	return nil
}

func resetBuild(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResetBuild(ctx, &v1alpha1.ResetBuildRequest{BuildID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to reset build: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	printBuild(resp.Build)
	return nil
}

func setLevel(cmd *cobra.Command, args []string) error {
	level, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid character level %q: %w", args[1], err)
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetCharacterLevel(ctx, &v1alpha1.SetCharacterLevelRequest{
		BuildID:        args[0],
		CharacterLevel: level,
	})
	if err != nil {
		return fmt.Errorf("failed to set character level: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	printBuild(resp.Build)
	return nil
}

func setMode(cmd *cobra.Command, args []string) error {
	var fourthOnly bool
	switch args[1] {
	case "full":
	case "fourth-only":
		fourthOnly = true
	default:
		return fmt.Errorf("unknown mode %q, want full or fourth-only", args[1])
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetMode(ctx, &v1alpha1.SetModeRequest{BuildID: args[0], FourthOnly: fourthOnly})
	if err != nil {
		return fmt.Errorf("failed to set mode: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	printBuild(resp.Build)
	return nil
}
