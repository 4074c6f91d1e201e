package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

var newCategory models.Category

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"category"},
	Short:   "Browse and manage asset categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(cmd, services.Categories.List)
	},
}

var categoriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cat, err := services.Categories.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), cat)
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := services.Categories.Create(cmd.Context(), newCategory)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), cat)
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an unused category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := services.Categories.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "category %d deleted\n", id)
		return nil
	},
}

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List branches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(cmd, services.Branches.List)
	},
}

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List departments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(cmd, services.Departments.List)
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLookup(cmd, services.Locations.List)
	},
}

// printLookup prints an unpaged list endpoint.
func printLookup[T any](cmd *cobra.Command, list func(context.Context) ([]T, error)) error {
	items, err := list(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), items)
}

func init() {
	categoriesCreateCmd.Flags().StringVar(&newCategory.Name, "name", "", "category name")
	categoriesCreateCmd.Flags().StringVar(&newCategory.Code, "code", "", "short code")
	categoriesCreateCmd.Flags().StringVar(&newCategory.Description, "description", "", "description")
	_ = categoriesCreateCmd.MarkFlagRequired("name")

	categoriesCmd.AddCommand(categoriesListCmd, categoriesGetCmd, categoriesCreateCmd, categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd, branchesCmd, departmentsCmd, locationsCmd)
}
