package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/h2non/filetype"
	"github.com/spf13/cobra"
)

func newFilesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "files",
		Short: "Download project attachments",
	}

	downloadCmd := &cobra.Command{
		Use:   "download <project-id> <file-id>",
		Short: "Download an attachment to disk",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			fileID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid file id %q", args[1])
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			data, err := client.Files().Download(cmd.Context(), projectID, fileID)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				// Pick an extension from the content when the caller
				// didn't name the output file.
				path = fmt.Sprintf("file-%d", fileID)
				if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
					path = path + "." + kind.Extension
				}
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("unable to write %s: %w", path, err)
			}
			okLabel.Printf("wrote %s (%d bytes)\n", path, len(data))
			return nil
		},
	}
	downloadCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	cmd.AddCommand(downloadCmd)

	return cmd
}
