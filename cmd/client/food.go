package main

import (
	"github.com/spf13/cobra"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

var (
	ingredientFlags listFlags
	menuFlags       listFlags
	foodFile        string
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Kitchen ingredients stock",
}

var ingredientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients, --status LOW_STOCK for items at the reorder threshold",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, &ingredientFlags, services.Ingredients.List)
	},
}

var ingredientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add an ingredient from a JSON document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var ing models.Ingredient
		if err := readJSON(foodFile, &ing); err != nil {
			return err
		}
		created, err := services.Ingredients.Create(cmd.Context(), ing)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var menuItemsCmd = &cobra.Command{
	Use:   "menu-items",
	Short: "Menu items",
}

var menuItemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu items, --status AVAILABLE for those on sale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, &menuFlags, services.MenuItems.List)
	},
}

var menuItemsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a menu item from a JSON document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var item models.MenuItem
		if err := readJSON(foodFile, &item); err != nil {
			return err
		}
		created, err := services.MenuItems.Create(cmd.Context(), item)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), created)
	},
}

func init() {
	ingredientFlags.register(ingredientsListCmd)
	menuFlags.register(menuItemsListCmd)
	for _, c := range []*cobra.Command{ingredientsCreateCmd, menuItemsCreateCmd} {
		c.Flags().StringVarP(&foodFile, "file", "f", "-", "JSON file, - for stdin")
	}

	ingredientsCmd.AddCommand(ingredientsListCmd, ingredientsCreateCmd)
	menuItemsCmd.AddCommand(menuItemsListCmd, menuItemsCreateCmd)
	rootCmd.AddCommand(ingredientsCmd, menuItemsCmd)
}
