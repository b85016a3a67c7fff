package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	concentrationorch "github.com/manaforge/spellcast/internal/orchestrators/concentration"
)

var concentrationCmd = &cobra.Command{
	Use:   "concentration",
	Short: "Inspect and maintain concentration state",
	Long:  `Concentration commands are only meaningful against a shared store; set REDIS_ADDR to operate on state written by other processes.`,
}

var concentrationShowFlags struct {
	casterID string
}

var concentrationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a caster's active concentration effect",
	RunE:  runConcentrationShow,
}

var concentrationSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Reap naturally expired concentration effects",
	RunE:  runConcentrationSweep,
}

func init() {
	concentrationShowCmd.Flags().StringVar(&concentrationShowFlags.casterID, "caster", "", "caster ID")
	_ = concentrationShowCmd.MarkFlagRequired("caster")

	concentrationCmd.AddCommand(concentrationShowCmd)
	concentrationCmd.AddCommand(concentrationSweepCmd)
}

func runConcentrationShow(cmd *cobra.Command, _ []string) error {
	svcs, cleanup, err := buildServices()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svcs.concentration.GetActive(cmd.Context(), &concentrationorch.GetActiveInput{
		CasterID: concentrationShowFlags.casterID,
	})
	if err != nil {
		return err
	}

	if out.Effect == nil {
		cmd.Println("no active concentration effect")
		return nil
	}

	payload, err := json.MarshalIndent(out.Effect, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode effect: %w", err)
	}
	cmd.Println(string(payload))
	return nil
}

func runConcentrationSweep(cmd *cobra.Command, _ []string) error {
	svcs, cleanup, err := buildServices()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svcs.concentration.Sweep(cmd.Context(), &concentrationorch.SweepInput{})
	if err != nil {
		return err
	}

	cmd.Printf("checked %d casters, removed %d expired effects\n", out.Checked, out.Removed)
	return nil
}
