package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/translation-review/internal/app"
	"github.com/DjordjeVuckovic/translation-review/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the merged samples and annotations to a dated file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app.App) error {
				a.Session.Start(cmd.Context())

				file, err := a.Session.Export(f)
				if err != nil {
					return err
				}
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
				path := filepath.Join(outDir, file.Name)
				if err := os.WriteFile(path, file.Data, 0o644); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "export format (json, xlsx)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	return cmd
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the local annotations to the remote store now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				a.Session.Start(cmd.Context())
				if err := a.Session.SaveNow(cmd.Context()); err != nil {
					return err
				}
				status := a.Session.SyncStatus()
				fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d annotated samples (upload %s)\n",
					a.Session.Annotations().Len(), status.UploadID)
				return nil
			})
		},
	}
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Restore annotations from the remote store when the local store is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				if a.Session.Start(cmd.Context()) {
					fmt.Fprintf(cmd.OutOrStdout(), "recovered %d annotated samples\n", a.Session.Annotations().Len())
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "nothing recovered, local store has %d annotated samples\n",
					a.Session.Annotations().Len())
				return nil
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show annotation progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				a.Session.Start(cmd.Context())
				p := a.Session.Progress()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "dataset:     %s\n", a.Session.DatasetName())
				fmt.Fprintf(out, "total:       %d\n", p.Total)
				fmt.Fprintf(out, "not started: %d\n", p.NotStarted)
				fmt.Fprintf(out, "partial:     %d\n", p.Partial)
				fmt.Fprintf(out, "done:        %d\n", p.Done)
				if dups := a.Dataset.Duplicates(); len(dups) > 0 {
					fmt.Fprintf(out, "duplicate ids: %v\n", dups)
				}
				return nil
			})
		},
	}
}
