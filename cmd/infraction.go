package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/lightning-bot/sanctum-go/filter"
)

var (
	infractionCreateFlags payloadFlags
	infractionEditFlags   payloadFlags
	infractionUser        int64
	infractionFilter      string
)

// infractionCmd groups the moderation infraction commands
var infractionCmd = &cobra.Command{
	Use:     "infraction",
	Aliases: []string{"inf"},
	Short:   "Manage moderation infractions",
}

var infractionCreateCmd = &cobra.Command{
	Use:   "create <guild>",
	Short: "Record a new infraction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		payload, err := infractionCreateFlags.payload(cmd)
		if err != nil {
			return err
		}
		result, err := client.CreateInfraction(cmd.Context(), guildID, payload)
		if err != nil {
			return fmt.Errorf("failed to create infraction: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var infractionGetCmd = &cobra.Command{
	Use:   "get <guild> <infraction>",
	Short: "Show an infraction",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, infractionID, err := guildAndID("infraction", args)
		if err != nil {
			return err
		}
		result, err := client.GetInfraction(cmd.Context(), guildID, infractionID)
		if err != nil {
			return fmt.Errorf("failed to get infraction: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

// infractionFilterExample is the --filter expression shown in the list help
const infractionFilterExample = `action == "ban" and icontains(reason, "spam")`

var infractionListCmd = &cobra.Command{
	Use:   "list <guild>",
	Short: "List the infractions of a guild",
	Long: `List the infractions of a guild, or of one user with --user.

--filter takes an expression evaluated against each infraction, for example:
  sanctumctl infraction list 1234 --filter '` + infractionFilterExample + `'`,
	Args: cobra.ExactArgs(1),
	RunE: runInfractionList,
}

func runInfractionList(cmd *cobra.Command, args []string) error {
	guildID, err := parseID("guild", args[0])
	if err != nil {
		return err
	}

	// Compile first so a bad expression fails before any request
	var f filter.CompiledFilter
	if infractionFilter != "" {
		f, err = filter.Compile(infractionFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	var result any
	if infractionUser != 0 {
		result, err = client.GetUserInfractions(cmd.Context(), guildID, infractionUser)
	} else {
		result, err = client.GetInfractions(cmd.Context(), guildID)
	}
	if err != nil {
		return fmt.Errorf("failed to list infractions: %w", err)
	}

	if f != nil {
		matches := filter.Apply(f, result)
		logger.Debug().
			Str("filter", f.Expression()).
			Int("matches", len(matches)).
			Msg("Filtered infractions")
		result = matches
	}

	return printResult(cmd.OutOrStdout(), result)
}

var infractionDeleteCmd = &cobra.Command{
	Use:   "delete <guild> <infraction> [infraction...]",
	Short: "Delete one or more infractions",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, err := parseID("guild", args[0])
		if err != nil {
			return err
		}
		ids, err := parseIDs("infraction", args[1:])
		if err != nil {
			return err
		}
		if len(ids) == 1 {
			result, err := client.DeleteInfraction(cmd.Context(), guildID, ids[0])
			if err != nil {
				return fmt.Errorf("failed to delete infraction: %w", err)
			}
			return printResult(cmd.OutOrStdout(), result)
		}
		return printBulkResult(cmd, "infractions", client.DeleteInfractions(cmd.Context(), guildID, ids))
	},
}

var infractionEditCmd = &cobra.Command{
	Use:   "edit <guild> <infraction>",
	Short: "Apply a partial update to an infraction",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, infractionID, err := guildAndID("infraction", args)
		if err != nil {
			return err
		}
		payload, err := infractionEditFlags.payload(cmd)
		if err != nil {
			return err
		}
		result, err := client.EditInfraction(cmd.Context(), guildID, infractionID, payload)
		if err != nil {
			return fmt.Errorf("failed to edit infraction: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var infractionPurgeCmd = &cobra.Command{
	Use:   "purge <guild> <user>",
	Short: "Delete every infraction a user has in a guild",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guildID, userID, err := guildAndID("user", args)
		if err != nil {
			return err
		}
		result, err := client.BulkDeleteUserInfractions(cmd.Context(), guildID, userID)
		if err != nil {
			return fmt.Errorf("failed to purge infractions: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

// guildAndID parses the common "<guild> <id>" argument pair
func guildAndID(kind string, args []string) (int64, int64, error) {
	guildID, err := parseID("guild", args[0])
	if err != nil {
		return 0, 0, err
	}
	id, err := parseID(kind, args[1])
	if err != nil {
		return 0, 0, err
	}
	return guildID, id, nil
}

func init() {
	addPayloadFlags(infractionCreateCmd, &infractionCreateFlags)
	addPayloadFlags(infractionEditCmd, &infractionEditFlags)
	infractionListCmd.Flags().Int64Var(&infractionUser, "user", 0, "only list infractions of this user")
	infractionListCmd.Flags().StringVarP(&infractionFilter, "filter", "f", "", "filter expression")

	infractionCmd.AddCommand(
		infractionCreateCmd,
		infractionGetCmd,
		infractionListCmd,
		infractionDeleteCmd,
		infractionEditCmd,
		infractionPurgeCmd,
	)
}
