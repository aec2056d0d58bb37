package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-planner/internal/handlers/planner/v1alpha1"
)

var listArchetypesCmd = &cobra.Command{
	Use:   "list-archetypes",
	Short: "List selectable archetypes by job category",
	RunE:  listArchetypes,
}

var getArchetypeCmd = &cobra.Command{
	Use:   "get-archetype [archetype-id]",
	Short: "Show an archetype's four skillbooks",
	Long: `Load the skillbooks of an archetype's four stages. Example:

  get-archetype 112`,
	Args: cobra.ExactArgs(1),
	RunE: getArchetype,
}

func listArchetypes(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListArchetypes(ctx, &v1alpha1.ListArchetypesRequest{})
	if err != nil {
		return fmt.Errorf("failed to list archetypes: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	for _, group := range resp.Groups {
		fmt.Printf("%s (%s), base level %d\n", group.Name, group.KoreanName, group.BaseUnlockLevel)
		for _, archetype := range group.Archetypes {
			fmt.Printf("  %d  %s (%s)  line %v\n", archetype.ID, archetype.Name, archetype.KoreanName, archetype.Line)
		}
	}

	return nil
}

func getArchetype(cmd *cobra.Command, args []string) error {
	archetypeID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid archetype id %q: %w", args[0], err)
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetArchetype(ctx, &v1alpha1.GetArchetypeRequest{ArchetypeID: archetypeID})
	if err != nil {
		return fmt.Errorf("failed to get archetype: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	archetype := resp.Archetype
	fmt.Printf("%d %s (%s), base level %d\n", archetype.ID, archetype.Name, archetype.KoreanName, archetype.BaseUnlockLevel)
	for _, branch := range archetype.Branches {
		if !branch.Available {
			fmt.Printf("  Branch %d: unavailable (%s)\n", branch.Index, branch.Error)
			continue
		}
		fmt.Printf("  Branch %d: %s (job %d, %d skills)\n", branch.Index, branch.BookName, branch.JobID, len(branch.Skills))
		for _, skill := range branch.Skills {
			fmt.Printf("    %d  %s  [master %d]\n", skill.ID, skill.Name, skill.MasterLevel)
		}
	}

	return nil
}
