package main

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/solarsim/core"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Derive a body's barycentric state at an epoch",
	RunE:  runState,
}

func init() {
	stateCmd.Flags().Int("body", 0, "body id")
	stateCmd.Flags().String("epoch", "", "RFC 3339 timestamp or seconds past the reference epoch (default: reference epoch)")
	_ = stateCmd.MarkFlagRequired("body")

	rootCmd.AddCommand(stateCmd)
}

func runState(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	hier, err := core.BuildHierarchy(cat)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetInt("body")
	raw, _ := cmd.Flags().GetString("epoch")
	dt, err := parseEpochArg(raw)
	if err != nil {
		return err
	}

	st, err := core.NewComposer(cat, hier).AbsoluteState(id, dt)
	if err != nil {
		return err
	}

	out := struct {
		Body         int        `json:"body"`
		EpochSeconds float64    `json:"epoch_seconds"`
		Frame        string     `json:"frame"`
		Position     [3]float64 `json:"position_km"`
		Velocity     [3]float64 `json:"velocity_km_s"`
	}{
		Body:         id,
		EpochSeconds: dt,
		Frame:        core.DefaultFrame,
		Position:     [3]float64{st.Position.X, st.Position.Y, st.Position.Z},
		Velocity:     [3]float64{st.Velocity.X, st.Velocity.Y, st.Velocity.Z},
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func parseEpochArg(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return core.EpochOffset(t), nil
	}
	if dt, err := strconv.ParseFloat(raw, 64); err == nil {
		return dt, nil
	}
	return 0, errors.New("epoch must be RFC 3339 or seconds past the reference epoch")
}
