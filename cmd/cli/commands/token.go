package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/event-planner/pkg/jwt"
)

// TokenCmd creates the token command, used to call the API locally
func TokenCmd(app *AppContext) *cobra.Command {
	var (
		userID string
		email  string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for an organizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cfg.IsProduction() {
				return fmt.Errorf("refusing to issue tokens in production")
			}

			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
				id = parsed
			}

			manager := jwt.NewManager(app.Cfg.JWT.AccessSecret, app.Cfg.JWT.AccessExpiry, app.Cfg.JWT.Issuer)
			token, err := manager.GenerateAccessToken(id, email, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "user_id: %s\nexpires_in: %s\n%s\n", id, manager.GetAccessExpiry(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Organizer id (random when empty)")
	cmd.Flags().StringVar(&email, "email", "organizer@example.com", "Email claim")
	cmd.Flags().StringVar(&name, "name", "Organizer", "Name claim")
	return cmd
}
