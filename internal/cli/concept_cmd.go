package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avermeer/cadence/internal/cli/formatter"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newConceptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concept",
		Short: "Manage campaign concepts",
	}

	cmd.AddCommand(
		newConceptAddCmd(app),
		newConceptListCmd(app),
		newConceptUpdateCmd(app),
		newConceptRemoveCmd(app),
	)

	return cmd
}

func newConceptAddCmd(app *App) *cobra.Command {
	var role, color string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new concept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			c := &domain.Concept{
				ID:        uuid.New().String(),
				Name:      args[0],
				Role:      domain.ConceptRole(role),
				Tags:      tags,
				Color:     color,
				CreatedAt: now,
				UpdatedAt: now,
			}

			if err := app.Concepts.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s concept %q\n", c.Role, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "support", "Concept role: hero or support")
	cmd.Flags().StringVar(&color, "color", "", "Display color as hex (e.g. #d65d0e)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Free-text tag (repeatable)")

	return cmd
}

func newConceptListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List concepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			concepts, err := app.Concepts.List(context.Background())
			if err != nil {
				return err
			}

			if len(concepts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No concepts found.")
				return nil
			}

			headers := []string{"NAME", "ROLE", "TAGS", "ID"}
			rows := make([][]string, 0, len(concepts))
			for _, c := range concepts {
				name := c.Name
				if c.IsHero() {
					name = formatter.StylePurple.Render(name)
				}
				rows = append(rows, []string{
					name,
					string(c.Role),
					strings.Join(c.Tags, ","),
					formatter.Dim(formatter.ShortID(c.ID)),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newConceptUpdateCmd(app *App) *cobra.Command {
	var name, role, color string
	var tags []string

	cmd := &cobra.Command{
		Use:   "update CONCEPT",
		Short: "Update a concept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveConcept(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("role") {
				c.Role = domain.ConceptRole(role)
			}
			if cmd.Flags().Changed("color") {
				c.Color = color
			}
			if cmd.Flags().Changed("tag") {
				c.Tags = tags
			}
			c.UpdatedAt = time.Now().UTC()

			if err := app.Concepts.Update(ctx, c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated concept %q\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Concept name")
	cmd.Flags().StringVar(&role, "role", "", "Concept role: hero or support")
	cmd.Flags().StringVar(&color, "color", "", "Display color as hex")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace tags (repeatable)")

	return cmd
}

func newConceptRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CONCEPT",
		Short: "Delete a concept (placements keep a dangling reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveConcept(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Concepts.Delete(ctx, c.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed concept %q\n", c.Name)
			return nil
		},
	}
}
