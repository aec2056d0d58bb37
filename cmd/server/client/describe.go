package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-planner/internal/handlers/planner/v1alpha1"
)

var describeLevel int

var describeSkillCmd = &cobra.Command{
	Use:   "describe-skill [build-id] [skill-id]",
	Short: "Render a skill tooltip",
	Long: `Render the tooltip at the build's invested level, or at --level. Skills
with no points preview their master level.`,
	Args: cobra.ExactArgs(2),
	RunE: describeSkill,
}

func init() {
	describeSkillCmd.Flags().IntVar(&describeLevel, "level", 0, "render at this level instead of the invested one")
}

func describeSkill(cmd *cobra.Command, args []string) error {
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

	resp, err := client.DescribeSkill(ctx, &v1alpha1.DescribeSkillRequest{
		BuildID: args[0],
		SkillID: skillID,
		Level:   describeLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to describe skill: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	t := resp.Tooltip
	fmt.Println(t.Name)
	fmt.Println(t.MasterLabel)
	fmt.Println(t.Description)
	for _, req := range t.Requirements {
		fmt.Println(req.Text)
	}
	fmt.Println()
	fmt.Println(t.LevelLabel)
	fmt.Println(t.Detail)
	return nil
}
