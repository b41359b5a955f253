package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/lightning-bot/sanctum-go/sanctum"
)

var (
	guildPutFlags    payloadFlags
	guildUpdateFlags payloadFlags
)

// guildCmd groups the guild state commands
var guildCmd = &cobra.Command{
	Use:   "guild",
	Short: "Manage stored guild state and configuration",
}

var guildGetCmd = &cobra.Command{
	Use:   "get <guild>",
	Short: "Show the stored state of a guild",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		result, err := client.GetGuild(cmd.Context(), guildID)
		if err != nil {
			return fmt.Errorf("failed to get guild: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var guildPutCmd = &cobra.Command{
	Use:   "put <guild>",
	Short: "Create or replace the stored state of a guild",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		payload, err := guildPutFlags.payload(cmd)
		if err != nil {
			return err
		}
		result, err := client.CreateGuild(cmd.Context(), guildID, payload)
		if err != nil {
			return fmt.Errorf("failed to create guild: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var guildUpdateCmd = &cobra.Command{
	Use:   "update <guild>",
	Short: "Update the stored state of a guild",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		payload, err := guildUpdateFlags.payload(cmd)
		if err != nil {
			return err
		}
		result, err := client.UpdateGuild(cmd.Context(), guildID, payload)
		if err != nil {
			return fmt.Errorf("failed to update guild: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var guildLeaveCmd = &cobra.Command{
	Use:   "leave <guild>",
	Short: "Mark the bot as having left a guild",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		result, err := client.LeaveGuild(cmd.Context(), guildID)
		if err != nil {
			return fmt.Errorf("failed to leave guild: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var guildConfigCmd = &cobra.Command{
	Use:   "config <guild>",
	Short: "Show the bot configuration of a guild",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		result, err := client.GetGuildBotConfig(cmd.Context(), guildID)
		if sanctum.IsNotFound(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "Guild %d has no bot configuration yet\n", guildID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get guild config: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var guildPrefixesCmd = &cobra.Command{
	Use:   "prefixes <guild> [prefix...]",
	Short: "Replace the command prefixes of a guild",
	Long: `Replace the command prefixes of a guild with the given list.
Passing no prefixes clears them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		result, err := client.BulkUpsertGuildPrefixes(cmd.Context(), guildID, args[1:])
		if err != nil {
			return fmt.Errorf("failed to set prefixes: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

func init() {
	addPayloadFlags(guildPutCmd, &guildPutFlags)
	addPayloadFlags(guildUpdateCmd, &guildUpdateFlags)

	guildCmd.AddCommand(guildGetCmd, guildPutCmd, guildUpdateCmd, guildLeaveCmd, guildConfigCmd, guildPrefixesCmd)
}
