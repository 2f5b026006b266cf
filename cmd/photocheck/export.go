package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lewtec/photocheck/annotation"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <file.yaml|->",
	Short: "Export questions, images and answers as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		write := func(w io.Writer) error { return annotation.Export(cmd.Context(), st, w) }
		if args[0] == "-" {
			return write(cmd.OutOrStdout())
		}
		if err := annotation.WriteFileAtomic(args[0], write); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", args[0])
		return nil
	},
}

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <file.md|file.html|->",
	Short: "Write a summary of the answers as markdown or HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := current.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		md, err := annotation.Report(cmd.Context(), st)
		if err != nil {
			return err
		}
		if args[0] == "-" {
			_, err := cmd.OutOrStdout().Write(md)
			return err
		}

		content := md
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".html", ".htm":
			if content, err = annotation.RenderHTML(md, "Photo annotation report"); err != nil {
				return err
			}
		}
		err = annotation.WriteFileAtomic(args[0], func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, reportCmd)
}
