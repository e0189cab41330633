package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game management commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameRenameCmd())
	cmd.AddCommand(newGameStartCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		Long: `Create a new game session.

Prints the six digit game code to share with players and the admin token
that controls the game. The admin token is disclosed only once; it is also
saved to the token file for subsequent commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CreateResult

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.AdminToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "join <code>",
		Short: "Join a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			req := map[string]string{"name": name}
			var result JoinResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/join", code), req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.PlayerToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get game details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRenameCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename <code> <player-id>",
		Short: "Rename a player",
		Long: `Rename a player in a game.

Players can rename themselves with their own token; the admin token can
rename anyone.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, playerID := args[0], args[1]

			req := map[string]string{"name": name}

			if err := client.Patch(fmt.Sprintf("/api/v1/games/%s/players/%s", code, playerID), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Renamed player %s to %s", playerID, name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code>",
		Short: "Start a game",
		Long: `Start a game, closing its lobby.

Only the admin token can start a game. Once started no further players can
join and every waiting player is released with the final roster.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/start", code), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Game %s started", code))
			return nil
		},
	}
}
