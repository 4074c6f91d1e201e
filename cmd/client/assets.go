package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

var (
	assetFlags listFlags
	assetFile  string
)

var assetsCmd = &cobra.Command{
	Use:     "assets",
	Aliases: []string{"asset"},
	Short:   "Browse and manage assets",
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets page by page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, &assetFlags, services.Assets.List)
	},
}

var assetsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		asset, err := services.Assets.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), asset)
	},
}

var assetsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List assets assigned to the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, err := services.Assets.Mine(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), assets)
	},
}

var assetsFoodCmd = &cobra.Command{
	Use:   "food",
	Short: "List assets that can store food",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, err := services.Assets.AvailableForFood(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), assets)
	},
}

var assetsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an asset from a JSON document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var asset models.Asset
		if err := readJSON(assetFile, &asset); err != nil {
			return err
		}
		created, err := services.Assets.Create(cmd.Context(), asset)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), created)
	},
}

var assetsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace an asset with a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var asset models.Asset
		if err := readJSON(assetFile, &asset); err != nil {
			return err
		}
		asset.ID = id
		updated, err := services.Assets.Update(cmd.Context(), asset)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), updated)
	},
}

var assetsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := services.Assets.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "asset %d deleted\n", id)
		return nil
	},
}

func init() {
	assetFlags.register(assetsListCmd)
	for _, c := range []*cobra.Command{assetsCreateCmd, assetsUpdateCmd} {
		c.Flags().StringVarP(&assetFile, "file", "f", "-", "asset JSON file, - for stdin")
	}

	assetsCmd.AddCommand(assetsListCmd, assetsGetCmd, assetsMineCmd, assetsFoodCmd,
		assetsCreateCmd, assetsUpdateCmd, assetsDeleteCmd)
	rootCmd.AddCommand(assetsCmd)
}
