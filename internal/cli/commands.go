package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/kanban-board/internal/app"
	"github.com/BuzzLyutic/kanban-board/internal/model"
	"github.com/BuzzLyutic/kanban-board/internal/render"
	"github.com/BuzzLyutic/kanban-board/internal/state"
	"github.com/BuzzLyutic/kanban-board/internal/transfer"
)

func newDispatchCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <envelope>",
		Short: "Apply one action, e.g. '{\"type\":\"ADD_BOARD\",\"payload\":{\"name\":\"Work\"}}'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := state.DecodeAction([]byte(args[0]))
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), load, func(ctx context.Context, a *app.App) error {
				doc := a.Service.Dispatch(action)
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			})
		},
	}
}

func newShowCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the boards and one board's columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID, _ := cmd.Flags().GetString("board")
			filter, _ := cmd.Flags().GetString("filter")

			return withApp(cmd.Context(), load, func(ctx context.Context, a *app.App) error {
				doc := a.Service.Snapshot()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, render.Boards(doc))

				var board model.Board
				var ok bool
				if boardID != "" {
					if board, ok = doc.Board(boardID); !ok {
						return fmt.Errorf("board %q not found", boardID)
					}
				} else if board, ok = doc.ActiveBoard(); !ok {
					return nil
				}

				if filter == "" {
					filter = doc.Filter
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, render.Board(board, doc.Theme, filter, time.Now()))
				return nil
			})
		},
	}
	cmd.Flags().String("board", "", "Board id (defaults to the active board)")
	cmd.Flags().String("filter", "", "Assignee filter (defaults to the saved filter)")
	return cmd
}

func newExportCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a kanban-backup-<date>.json file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			fromRemote, _ := cmd.Flags().GetBool("remote")

			return withApp(cmd.Context(), load, func(ctx context.Context, a *app.App) error {
				doc := a.Service.Snapshot()
				if fromRemote {
					if !a.Remote.Configured() {
						return errors.New("no remote backend configured")
					}
					remoteDoc := a.Remote.Load(ctx)
					if remoteDoc == nil {
						return errors.New("no remote state found")
					}
					doc = *remoteDoc
				}

				path := filepath.Join(dir, transfer.FileName(time.Now()))
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := transfer.Export(f, doc); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	cmd.Flags().String("dir", ".", "Directory to write the backup into")
	cmd.Flags().Bool("remote", false, "Export the remote record instead of the local state")
	return cmd
}

func newImportCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all boards with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			defer f.Close()

			return withApp(cmd.Context(), load, func(ctx context.Context, a *app.App) error {
				doc, err := a.Service.Import(f)
				if err != nil {
					return fmt.Errorf("import failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d boards\n", len(doc.Boards))
				return nil
			})
		},
	}
}
