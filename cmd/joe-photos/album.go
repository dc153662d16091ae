package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-photos/internal/domain"
)

func newAlbumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "album",
		Short: "List and manage albums",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List albums in collection order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, _, closeLib, err := openLibrary(cmd)
				if err != nil {
					return err
				}
				defer closeLib()

				out := cmd.OutOrStdout()
				for _, a := range lib.Albums(cmd.Context()) {
					fmt.Fprintf(out, "%s\t%d photos\n", a.Name, a.PhotoCount())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Show an album's photos and tags",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, _, closeLib, err := openLibrary(cmd)
				if err != nil {
					return err
				}
				defer closeLib()

				a := lib.FindAlbum(cmd.Context(), args[0])
				if a == nil {
					return fmt.Errorf("album %q not found", args[0])
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%d photos)\n", a.Name, a.PhotoCount())
				for i, p := range a.Photos {
					fmt.Fprintf(out, "%3d  %s  %s  %s", i, p.ID, p.Filename, p.ImagePath)
					if len(p.Tags) > 0 {
						fmt.Fprintf(out, "  [%s]", formatTags(p.Tags))
					}
					fmt.Fprintln(out)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create an empty album",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, _, closeLib, err := openLibrary(cmd)
				if err != nil {
					return err
				}
				defer closeLib()

				a, err := lib.CreateAlbum(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created album %q\n", a.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete an album and its photos",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, _, closeLib, err := openLibrary(cmd)
				if err != nil {
					return err
				}
				defer closeLib()

				if err := lib.DeleteAlbum(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted album %q\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename <old> <new>",
			Short: "Rename an album",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, _, closeLib, err := openLibrary(cmd)
				if err != nil {
					return err
				}
				defer closeLib()

				a, err := lib.RenameAlbum(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "renamed album %q to %q\n", args[0], a.Name)
				return nil
			},
		},
	)
	return cmd
}

func formatTags(tags []domain.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
