package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lorenzotomasdiez/debate-cli/internal/output"
	"github.com/lorenzotomasdiez/debate-cli/internal/storage"
	"github.com/spf13/cobra"
)

func newDebatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debates",
		Short: "Manage stored debates",
	}
	cmd.AddCommand(newDebatesListCmd())
	cmd.AddCommand(newDebatesViewCmd())
	cmd.AddCommand(newDebatesExportCmd())
	cmd.AddCommand(newDebatesDeleteCmd())
	return cmd
}

func openBackend(cmd *cobra.Command) (*storage.JSONBackend, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.NewJSONBackend(cfg.DataDir)
}

func newDebatesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored debates",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			backend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			records, err := backend.List(limit)
			if err != nil {
				return err
			}
			fmt.Print(output.FormatList(records))
			return nil
		},
	}
	cmd.Flags().Int("limit", 10, "Maximum debates to list")
	return cmd
}

func newDebatesViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <debate-id>",
		Short: "View a stored debate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			backend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			record, err := backend.Get(args[0])
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("debate %q not found", args[0])
			}
			if err != nil {
				return err
			}
			switch format {
			case "markdown":
				fmt.Println(output.FormatMarkdown(record))
			case "text":
				fmt.Println(output.FormatDebate(record))
			default:
				return fmt.Errorf("unknown format %q: want text or markdown", format)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "text", "Output format: text or markdown")
	return cmd
}

func newDebatesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <debate-id>",
		Short: "Export a stored debate to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")

			backend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			record, err := backend.Get(args[0])
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("debate %q not found", args[0])
			}
			if err != nil {
				return err
			}

			var content []byte
			switch format {
			case "markdown":
				content = []byte(output.FormatMarkdown(record))
			case "text":
				content = []byte(output.FormatDebate(record))
			case "json":
				content, err = json.MarshalIndent(record, "", "  ")
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q: want markdown, json or text", format)
			}

			if dir := filepath.Dir(outputFile); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(outputFile, content, 0o644); err != nil {
				return err
			}
			fmt.Printf("Debate exported to %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().String("output", "", "Output file path (required)")
	cmd.Flags().String("format", "markdown", "Export format: markdown, json or text")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newDebatesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <debate-id>",
		Short: "Delete a stored debate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := openBackend(cmd)
			if err != nil {
				return err
			}
			existed, err := backend.Delete(args[0])
			if err != nil {
				return err
			}
			if !existed {
				fmt.Printf("Debate %s not found\n", args[0])
				return nil
			}
			fmt.Printf("Debate %s deleted\n", args[0])
			return nil
		},
	}
}
