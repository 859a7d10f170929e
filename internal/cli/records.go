package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mcoot/playerlist/internal/model"
)

func newListCmd() *cobra.Command {
	var verdict string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marked players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter model.Verdict
			if verdict != "" {
				v, err := model.ParseVerdict(verdict)
				if err != nil {
					return err
				}
				filter = v
			}

			views := []RecordView{}
			for _, id := range app.Store.IDs() {
				r, _ := app.Store.Get(id)
				if filter != "" && r.Verdict != filter {
					continue
				}
				if !all && filter == "" && r.IsEmpty() {
					continue
				}
				views = append(views, NewRecordView(id, r))
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(views)
			return nil
		},
	}

	cmd.Flags().StringVar(&verdict, "verdict", "", "Only list players with this verdict")
	cmd.Flags().BoolVar(&all, "all", false, "Include records holding no information")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <steamid>",
		Short: "Show a player's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseSteamID(args[0])
			if err != nil {
				return err
			}

			r, ok := app.Store.Get(id)
			if !ok {
				return fmt.Errorf("no record for %s", id)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(NewRecordView(id, r))
			return nil
		},
	}
}

func newVerdictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verdict <steamid> <verdict>",
		Short: "Mark a player as Player, Bot, Suspicious, Cheater or Trusted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseSteamID(args[0])
			if err != nil {
				return err
			}
			verdict, err := model.ParseVerdict(args[1])
			if err != nil {
				return err
			}

			r := app.Store.SetVerdict(id, verdict)
			if err := app.Store.Save(); err != nil {
				return fmt.Errorf("failed to save playerlist: %w", err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(NewRecordView(id, r))
			return nil
		},
	}
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <steamid> <name>",
		Short: "Record a name a player was seen using",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseSteamID(args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if !app.Store.Contains(id) {
				out.PrintMessage(fmt.Sprintf("No record for %s, name not tracked", id))
				return nil
			}

			app.Store.UpdateName(id, args[1])
			app.Store.SaveOK()

			r, _ := app.Store.Get(id)
			out.Print(NewRecordView(id, r))
			return nil
		},
	}
}

func newNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "note <steamid> <json>",
		Short: "Replace a player's custom data with a JSON value",
		Example: `  playerlist note 76561197960287930 '{"note":"spinbot on upward"}'
  playerlist note [U:1:22202] '"plain text"'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseSteamID(args[0])
			if err != nil {
				return err
			}

			var data any
			if err := json.Unmarshal([]byte(args[1]), &data); err != nil {
				return fmt.Errorf("custom data must be valid JSON: %w", err)
			}

			r := app.Store.SetCustomData(id, data)
			if err := app.Store.Save(); err != nil {
				return fmt.Errorf("failed to save playerlist: %w", err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(NewRecordView(id, r))
			return nil
		},
	}
}

func newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove records that hold no verdict or custom data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed := app.Store.PruneEmpty()
			if removed > 0 {
				app.Store.SaveOK()
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Removed %d empty records", removed))
			return nil
		},
	}
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the playerlist is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(app.Store.Location())
			return nil
		},
	}
}
