package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/lightning-bot/sanctum-go/sanctum"
)

var (
	timerCreateFlags payloadFlags
	timerListLimit   int
	reminderLimit    int
)

// timerCmd groups the timer commands
var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Manage scheduled timers",
}

var timerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule a new timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := timerCreateFlags.payload(cmd)
		if err != nil {
			return err
		}
		result, err := client.CreateTimer(cmd.Context(), payload)
		if err != nil {
			return fmt.Errorf("failed to create timer: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var timerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a timer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("timer", args[0])
		if err != nil {
			return err
		}
		result, err := client.GetTimer(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get timer: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var timerDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more timers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs("timer", args)
		if err != nil {
			return err
		}
		if len(ids) == 1 {
			result, err := client.DeleteTimer(cmd.Context(), ids[0])
			if err != nil {
				return fmt.Errorf("failed to delete timer: %w", err)
			}
			return printResult(cmd.OutOrStdout(), result)
		}
		return printBulkResult(cmd, "timers", client.DeleteTimers(cmd.Context(), ids))
	},
}

var timerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending timers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.GetTimers(cmd.Context(), timerListLimit)
		if err != nil {
			return fmt.Errorf("failed to list timers: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

// reminderCmd groups the per-user reminder commands
var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage user reminders",
}

var reminderListCmd = &cobra.Command{
	Use:   "list <user>",
	Short: "List the reminders of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID("user", args[0])
		if err != nil {
			return err
		}
		result, err := client.GetUserReminders(cmd.Context(), userID, reminderLimit)
		if err != nil {
			return fmt.Errorf("failed to list reminders: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <user> <reminder>",
	Short: "Delete a reminder of a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID("user", args[0])
		if err != nil {
			return err
		}
		reminderID, err := parseID("reminder", args[1])
		if err != nil {
			return err
		}
		result, err := client.DeleteUserReminder(cmd.Context(), userID, reminderID)
		if err != nil {
			return fmt.Errorf("failed to delete reminder: %w", err)
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

func init() {
	addPayloadFlags(timerCreateCmd, &timerCreateFlags)
	timerListCmd.Flags().IntVar(&timerListLimit, "limit", sanctum.DefaultTimersLimit, "maximum number of timers to list")
	reminderListCmd.Flags().IntVar(&reminderLimit, "limit", sanctum.DefaultRemindersLimit, "maximum number of reminders to list")

	timerCmd.AddCommand(timerCreateCmd, timerGetCmd, timerDeleteCmd, timerListCmd)
	reminderCmd.AddCommand(reminderListCmd, reminderDeleteCmd)
}
