package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

var (
	transferFlags  listFlags
	transferNote   string
	transferCreate models.TransferRequest
)

var transfersCmd = &cobra.Command{
	Use:     "transfers",
	Aliases: []string{"transfer"},
	Short:   "Request and process asset transfers between branches",
}

var transfersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transfers page by page",
	Long: `List transfers. --status accepts a comma-separated set, for example
--status PENDING,APPROVED.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, &transferFlags, services.Transfers.List)
	},
}

var transfersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one transfer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		t, err := services.Transfers.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), t)
	},
}

var transfersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Request a transfer of an asset to another branch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := services.Transfers.Create(cmd.Context(), transferCreate)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), t)
	},
}

type transitionFunc func(ctx context.Context, id int64, note string) (models.Transfer, error)

// transitionCmd builds a subcommand moving a transfer to another status.
func transitionCmd(use, short string, fn func() transitionFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := fn()(cmd.Context(), id, transferNote)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().StringVarP(&transferNote, "note", "n", "", "note recorded with the status change")
	return cmd
}

func init() {
	transferFlags.register(transfersListCmd)

	transfersCreateCmd.Flags().Int64Var(&transferCreate.AssetID, "asset", 0, "asset id")
	transfersCreateCmd.Flags().Int64Var(&transferCreate.ToBranchID, "to", 0, "destination branch id")
	transfersCreateCmd.Flags().StringVar(&transferCreate.Reason, "reason", "", "reason for the transfer")
	_ = transfersCreateCmd.MarkFlagRequired("asset")
	_ = transfersCreateCmd.MarkFlagRequired("to")

	// services is only set once the root PersistentPreRunE has run.
	transfersCmd.AddCommand(
		transfersListCmd,
		transfersGetCmd,
		transfersCreateCmd,
		transitionCmd("approve", "Approve a pending transfer", func() transitionFunc { return services.Transfers.Approve }),
		transitionCmd("reject", "Reject a pending transfer", func() transitionFunc { return services.Transfers.Reject }),
		transitionCmd("complete", "Mark an approved transfer as delivered", func() transitionFunc { return services.Transfers.Complete }),
		transitionCmd("cancel", "Cancel a pending or approved transfer", func() transitionFunc { return services.Transfers.Cancel }),
	)
	rootCmd.AddCommand(transfersCmd)
}
