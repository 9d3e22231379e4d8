package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRegisterCmd(a *app) *cobra.Command {
	var newUser users.NewUser
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user and log in as them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if newUser.Name == "" || newUser.Email == "" {
				return errors.New("--name and --email are required")
			}

			user, err := a.gateway.CreateUser(cmd.Context(), newUser)
			if err != nil {
				return failed("register", err)
			}
			if err := a.sessions.Save(user.ID); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "✓ Registered, your user id is %d\n", user.ID)
			printProfile(out, user)
			return nil
		},
	}
	cmd.Flags().StringVar(&newUser.Name, "name", "", "display name")
	cmd.Flags().StringVar(&newUser.Email, "email", "", "email address")
	cmd.Flags().Float64Var(&newUser.Weight, "weight", 0, "body weight in kg")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <user id>",
		Short: "Log in as an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			user, err := a.gateway.ReadUser(cmd.Context(), userID)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("invalid user id: %d", userID)
			}
			if err != nil {
				return failed("login", err)
			}
			if err := a.sessions.Save(user.ID); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Logged in as %s (%d)\n", user.Name, user.ID)
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", user.Name, user.ID)
			return nil
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show, update or delete your profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), user)
			return nil
		},
	}

	var update users.NewUser
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update name, email or weight; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := a.currentUser(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				user.Name = update.Name
			}
			if flags.Changed("email") {
				user.Email = update.Email
			}
			if flags.Changed("weight") {
				user.Weight = update.Weight
			}

			if err := a.gateway.UpdateUser(ctx, *user); err != nil {
				return failed("update profile", err)
			}

			updated, err := a.currentUser(ctx)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Profile updated")
			printProfile(cmd.OutOrStdout(), updated)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&update.Name, "name", "", "display name")
	updateCmd.Flags().StringVar(&update.Email, "email", "", "email address")
	updateCmd.Flags().Float64Var(&update.Weight, "weight", 0, "body weight in kg")

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your profile with all workouts, friendships and goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := a.currentUser(ctx)
			if err != nil {
				return err
			}
			if err := a.gateway.DeleteUser(ctx, user.ID); err != nil {
				return failed("delete profile", err)
			}
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "Deleted user %d, logged out.\n", user.ID)
			return nil
		},
	}

	profileCmd.AddCommand(showCmd, updateCmd, deleteCmd)
	return profileCmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}
