package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/client"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/models"
)

// withDirectory opens a connection for the duration of fn.
func withDirectory(ctx context.Context, opts *RootOptions, fn func(context.Context, client.Directory) error) (err error) {
	d, err := opts.open()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, d.Close())
	}()
	return fn(ctx, d)
}

func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDirectory(cmd.Context(), opts, func(ctx context.Context, d client.Directory) error {
				terms, err := d.List(ctx)
				if err != nil {
					return err
				}
				return output(cmd, opts).Terms(terms)
			})
		},
	}
}

func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <keyword>",
		Short: "Show one term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDirectory(cmd.Context(), opts, func(ctx context.Context, d client.Directory) error {
				t, err := d.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return output(cmd, opts).Term(t)
			})
		},
	}
}

func NewCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <keyword> <description...>",
		Short: "Add a term",
		Long: `Add a term. Words after the keyword form the description.

Example:
  glossaryctl create HTTP HyperText Transfer Protocol`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDirectory(cmd.Context(), opts, func(ctx context.Context, d client.Directory) error {
				t, err := d.Create(ctx, args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				return output(cmd, opts).Term(t)
			})
		},
	}
}

func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	var keyword, description string

	cmd := &cobra.Command{
		Use:   "update <keyword>",
		Short: "Rename a term or change its description",
		Long: `Rename a term or change its description. Only the flags given are
changed; with neither flag the term is shown unchanged.

Example:
  glossaryctl update HTTP --keyword HTTPS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch models.Patch
			if cmd.Flags().Changed("keyword") {
				patch.Keyword = &keyword
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}

			return withDirectory(cmd.Context(), opts, func(ctx context.Context, d client.Directory) error {
				t, err := d.Update(ctx, args[0], patch)
				if err != nil {
					return err
				}
				return output(cmd, opts).Term(t)
			})
		},
	}

	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "new keyword")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")

	return cmd
}

func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <keyword>",
		Short: "Remove a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDirectory(cmd.Context(), opts, func(ctx context.Context, d client.Directory) error {
				if err := d.Delete(ctx, args[0]); err != nil {
					return err
				}
				return output(cmd, opts).Deleted(args[0])
			})
		},
	}
}
