package main

import (
	"fmt"
	"log/slog"

	"github.com/austrich-ai/austrich/internal/cli"
	"github.com/austrich-ai/austrich/internal/model"
	"github.com/spf13/cobra"
)

func storageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect the backend's input and output buckets",
	}

	cmd.AddCommand(storageInputsCmd())
	cmd.AddCommand(storageOutputsCmd())
	cmd.AddCommand(storageDeleteCmd())

	return cmd
}

func storageInputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inputs",
		Short: "List uploaded recordings awaiting analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}

			objects, err := backend.ListInputObjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list input objects: %w", err)
			}

			printObjects(cmd, objects)
			return nil
		},
	}
}

func storageOutputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outputs",
		Short: "List generated artifacts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := newBackend()
			if err != nil {
				return err
			}

			objects, err := backend.ListOutputObjects(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list output objects: %w", err)
			}

			printObjects(cmd, objects)
			return nil
		},
	}
}

func storageDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <bucket> <key>",
		Short: "Delete an object from a backend bucket",
		Long: `Delete an object from the backend's input or output bucket.

Bucket must be "inputs" or "outputs". Deletion is permanent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket := args[0]
			if bucket != "inputs" && bucket != "outputs" {
				return fmt.Errorf("bucket must be \"inputs\" or \"outputs\", got %q", bucket)
			}

			backend, err := newBackend()
			if err != nil {
				return err
			}

			if err := backend.DeleteObject(cmd.Context(), bucket, args[1]); err != nil {
				return fmt.Errorf("failed to delete object: %w", err)
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Deleted %s/%s", bucket, args[1])))
			return nil
		},
	}
}

func printObjects(cmd *cobra.Command, objects []model.StorageObject) {
	if len(objects) == 0 {
		slog.Info(cli.FormatInfo("No objects found"))
		return
	}

	out := cmd.OutOrStdout()
	for _, obj := range objects {
		fmt.Fprintf(out, "%-50s %12d  %s\n", obj.Key, obj.Size, obj.LastModified)
	}
}
