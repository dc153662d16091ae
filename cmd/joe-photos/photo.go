package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-photos/internal/library"
)

// photoSelector addresses a photo by ID or, failing that, by image path or
// filename.
type photoSelector struct {
	id       string
	path     string
	filename string
}

func (s *photoSelector) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.id, "id", "", "photo ID")
	cmd.Flags().StringVar(&s.path, "path", "", "photo image path")
	cmd.Flags().StringVar(&s.filename, "filename", "", "photo display name")
	cmd.MarkFlagsMutuallyExclusive("id", "path")
	cmd.MarkFlagsMutuallyExclusive("id", "filename")
}

func (s *photoSelector) byLocation() bool { return s.id == "" }

func (s *photoSelector) check() error {
	if s.id == "" && s.path == "" && s.filename == "" {
		return errors.New("one of --id, --path or --filename is required")
	}
	return nil
}

// resolve returns the album holding the photo and its ID.
func (s *photoSelector) resolve(ctx context.Context, lib *library.Library, album string) (string, string, error) {
	if err := s.check(); err != nil {
		return "", "", err
	}
	if s.id != "" {
		return album, s.id, nil
	}
	a, p, err := lib.LocatePhoto(ctx, album, s.path, s.filename)
	if err != nil {
		return "", "", err
	}
	return a.Name, p.ID, nil
}

func newPhotoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Add, remove, move and rename photos",
	}
	cmd.AddCommand(newPhotoAddCmd(), newPhotoRemoveCmd(), newPhotoMoveCmd(), newPhotoRenameCmd())
	return cmd
}

func newPhotoAddCmd() *cobra.Command {
	var filename string
	cmd := &cobra.Command{
		Use:   "add <album> <image-path>",
		Short: "Append a photo to an album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			p, err := lib.AddPhoto(cmd.Context(), args[0], args[1], filename)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", p.Filename, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&filename, "filename", "", "display name (default: last element of the path)")
	return cmd
}

func newPhotoRemoveCmd() *cobra.Command {
	var sel photoSelector
	cmd := &cobra.Command{
		Use:   "remove <album>",
		Short: "Remove a photo from an album",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sel.check(); err != nil {
				return err
			}
			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			if sel.byLocation() {
				err = lib.RemovePhoto(cmd.Context(), args[0], sel.path, sel.filename)
			} else {
				err = lib.RemovePhotoByID(cmd.Context(), args[0], sel.id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "photo removed")
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func newPhotoMoveCmd() *cobra.Command {
	var sel photoSelector
	cmd := &cobra.Command{
		Use:   "move <from-album> <to-album>",
		Short: "Move a photo to the end of another album",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sel.check(); err != nil {
				return err
			}
			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			if sel.byLocation() {
				err = lib.MovePhoto(cmd.Context(), args[0], args[1], sel.path, sel.filename)
			} else {
				err = lib.MovePhotoByID(cmd.Context(), args[0], args[1], sel.id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "photo moved to %q\n", args[1])
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func newPhotoRenameCmd() *cobra.Command {
	var (
		sel   photoSelector
		index int
	)
	cmd := &cobra.Command{
		Use:   "rename <album> <new-filename>",
		Short: "Change a photo's display name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			ctx := cmd.Context()
			if cmd.Flags().Changed("index") {
				err = lib.RenamePhotoAt(ctx, args[0], index, args[1])
			} else {
				var album, id string
				if album, id, err = sel.resolve(ctx, lib, args[0]); err == nil {
					err = lib.RenamePhotoByID(ctx, album, id, args[1])
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "photo renamed")
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().IntVar(&index, "index", 0, "zero-based position of the photo in the album")
	cmd.MarkFlagsMutuallyExclusive("index", "id")
	return cmd
}
