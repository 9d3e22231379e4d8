package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newFriendCmd(a *app) *cobra.Command {
	friendCmd := &cobra.Command{
		Use:   "friend",
		Short: "Manage the users you follow",
	}

	// mutate runs op on (me, friend id) and re-prints the friend list.
	mutate := func(use, short, done string, op func(cmd *cobra.Command, userID, friendID int) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <user id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				friendID, err := parseID(args[0])
				if err != nil {
					return err
				}
				user, err := a.currentUser(cmd.Context())
				if err != nil {
					return err
				}
				if err := op(cmd, user.ID, friendID); err != nil {
					return failed(use+" friend", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s %d\n", done, friendID)
				return a.printFriends(cmd, user.ID)
			},
		}
	}

	addCmd := mutate("add", "Add a friend", "Added friend", func(cmd *cobra.Command, userID, friendID int) error {
		return a.gateway.AddFriend(cmd.Context(), userID, friendID)
	})
	removeCmd := mutate("remove", "Remove a friend", "Removed friend", func(cmd *cobra.Command, userID, friendID int) error {
		return a.gateway.RemoveFriend(cmd.Context(), userID, friendID)
	})

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your friends",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			return a.printFriends(cmd, user.ID)
		},
	}

	friendCmd.AddCommand(addCmd, removeCmd, listCmd)
	return friendCmd
}

func (a *app) printFriends(cmd *cobra.Command, userID int) error {
	list, err := a.gateway.ListFriends(cmd.Context(), userID)
	if err != nil {
		return failed("list friends", err)
	}
	printFriends(cmd.OutOrStdout(), list)
	return nil
}

func newGoalCmd(a *app) *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Set and track goals",
	}

	addCmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			if description == "" {
				return fmt.Errorf("goal description is empty")
			}
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			goal, err := a.gateway.CreateGoal(cmd.Context(), user.ID, description)
			if err != nil {
				return failed("add goal", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Added goal %d\n", goal.ID)
			return a.printGoals(cmd, user.ID)
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your goals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			return a.printGoals(cmd, user.ID)
		},
	}

	byID := func(use, short, done string, op func(cmd *cobra.Command, goalID int) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <goal id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				goalID, err := parseID(args[0])
				if err != nil {
					return err
				}
				user, err := a.currentUser(cmd.Context())
				if err != nil {
					return err
				}
				if err := op(cmd, goalID); err != nil {
					return failed(use+" goal", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s %d\n", done, goalID)
				return a.printGoals(cmd, user.ID)
			},
		}
	}

	doneCmd := byID("done", "Mark a goal completed", "Completed goal", func(cmd *cobra.Command, goalID int) error {
		return a.gateway.SetGoalStatus(cmd.Context(), goalID, true)
	})
	undoCmd := byID("undo", "Mark a goal not completed", "Reopened goal", func(cmd *cobra.Command, goalID int) error {
		return a.gateway.SetGoalStatus(cmd.Context(), goalID, false)
	})
	deleteCmd := byID("delete", "Delete a goal", "Deleted goal", func(cmd *cobra.Command, goalID int) error {
		return a.gateway.DeleteGoal(cmd.Context(), goalID)
	})

	goalCmd.AddCommand(addCmd, listCmd, doneCmd, undoCmd, deleteCmd)
	return goalCmd
}

func (a *app) printGoals(cmd *cobra.Command, userID int) error {
	list, err := a.gateway.ListGoals(cmd.Context(), userID)
	if err != nil {
		return failed("list goals", err)
	}
	printGoals(cmd.OutOrStdout(), list)
	return nil
}
