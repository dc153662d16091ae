package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-photos/internal/domain"
)

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag photos with people and places",
	}
	cmd.AddCommand(newTagAddCmd(), newTagRemoveCmd())
	return cmd
}

func newTagAddCmd() *cobra.Command {
	var sel photoSelector
	cmd := &cobra.Command{
		Use:   "add <album> <Person|Location> <value>",
		Short: "Attach a tag to a photo",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := domain.ParseTagType(args[1])
			if err != nil {
				return err
			}
			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			ctx := cmd.Context()
			album, id, err := sel.resolve(ctx, lib, args[0])
			if err != nil {
				return err
			}
			tag := domain.NewTag(typ, args[2])
			if err := lib.AddTag(ctx, album, id, tag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tagged %s with %s\n", id, tag)
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}

func newTagRemoveCmd() *cobra.Command {
	var sel photoSelector
	cmd := &cobra.Command{
		Use:   "remove <album> <Person|Location> <value>",
		Short: "Detach a tag from a photo",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := domain.ParseTagType(args[1])
			if err != nil {
				return err
			}
			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			ctx := cmd.Context()
			album, id, err := sel.resolve(ctx, lib, args[0])
			if err != nil {
				return err
			}
			tag := domain.NewTag(typ, args[2])
			if err := lib.RemoveTag(ctx, album, id, tag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %s\n", tag, id)
			return nil
		},
	}
	sel.register(cmd)
	return cmd
}
