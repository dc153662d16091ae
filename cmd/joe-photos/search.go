package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-photos/internal/domain"
	"github.com/joestump/joe-photos/internal/search"
)

func newSearchCmd() *cobra.Command {
	var typ1, value1, typ2, value2, op string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find photos by tag value prefix",
		Example: "  joe-photos search --type Location --value par\n" +
			"  joe-photos search --type Person --value ali --type2 Location --value2 paris --op or",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t1, err := domain.ParseTagType(typ1)
			if err != nil {
				return err
			}
			if strings.TrimSpace(value1) == "" {
				return errors.New("--value must not be blank")
			}
			var (
				t2       domain.TagType
				operator search.Operator
			)
			if value2 != "" {
				if t2, err = domain.ParseTagType(typ2); err != nil {
					return err
				}
				if operator, err = search.ParseOperator(op); err != nil {
					return err
				}
			}

			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			albums := lib.Albums(cmd.Context())
			var photos []*domain.Photo
			if value2 == "" {
				photos = search.ByTag(albums, t1, value1)
			} else {
				photos = search.ByTags(albums,
					search.Criterion{Type: t1, Value: value1},
					search.Criterion{Type: t2, Value: value2},
					operator)
			}

			out := cmd.OutOrStdout()
			for _, p := range photos {
				fmt.Fprintf(out, "%s  %s  %s  [%s]\n", p.ID, p.Filename, p.ImagePath, formatTags(p.Tags))
			}
			if len(photos) == 0 {
				fmt.Fprintln(out, "no photos found")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typ1, "type", "", "tag type: Person or Location")
	cmd.Flags().StringVar(&value1, "value", "", "value prefix, case-insensitive")
	cmd.Flags().StringVar(&typ2, "type2", "", "second tag type")
	cmd.Flags().StringVar(&value2, "value2", "", "second value prefix")
	cmd.Flags().StringVar(&op, "op", "and", "how to combine two criteria: and or or")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newSuggestCmd() *cobra.Command {
	var typ, prefix string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List known tag values, optionally narrowed by prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTagType(typ)
			if err != nil {
				return err
			}
			lib, _, closeLib, err := openLibrary(cmd)
			if err != nil {
				return err
			}
			defer closeLib()

			albums := lib.Albums(cmd.Context())
			var values []string
			if prefix != "" {
				values = search.AutocompleteSuggestions(albums, t, prefix)
			} else {
				values = search.TagValueSuggestions(albums, t)
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "tag type: Person or Location")
	cmd.Flags().StringVar(&prefix, "prefix", "", "value prefix, case-insensitive")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
