package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tansive/semverpack/internal/account"
	"github.com/tansive/semverpack/internal/common/uuid"
)

type loginView struct {
	ID            string `json:"id"`
	Service       string `json:"service"`
	ServiceUser   string `json:"service_user"`
	UserID        string `json:"user_id"`
	SchemaVersion string `json:"schema_version"`
	SchemaPacked  uint64 `json:"schema_packed"`
	CreatedAt     string `json:"created_at"`
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var service, serviceUser, userID string

	cmd := &cobra.Command{
		Use:   "login --user NAME [--service local|github] [--user-id UUID]",
		Short: "Create a login record stamped with the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := account.ServiceFromString(service)
			if err != nil {
				return err
			}

			uid := uuid.New()
			if userID != "" {
				uid, err = uuid.Parse(userID)
				if err != nil {
					return ErrInvalidArgument.MsgErr("invalid --user-id", err)
				}
			}

			l, err := account.NewLogin(svc, serviceUser, uid)
			if err != nil {
				return err
			}

			view := loginView{
				ID:            l.ID.String(),
				Service:       l.Service.String(),
				ServiceUser:   l.ServiceUser,
				UserID:        l.UserID.String(),
				SchemaVersion: l.SchemaVersion.String(),
				SchemaPacked:  l.SchemaVersion.Uint64(),
				CreatedAt:     l.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			}
			if opts.format() == OutputText {
				okLabel.Fprintf(cmd.OutOrStdout(), "Login created\n")
			}
			text := fmt.Sprintf("ID: %s\nService: %s\nService user: %s\nUser ID: %s\nSchema version: %s",
				view.ID, view.Service, view.ServiceUser, view.UserID, view.SchemaVersion)
			return opts.print(cmd.OutOrStdout(), text, view)
		},
	}

	cmd.Flags().StringVar(&service, "service", account.ServiceLocal.String(), "Login service: Local or GitHub")
	cmd.Flags().StringVar(&serviceUser, "user", "", "User ID at the login service")
	cmd.Flags().StringVar(&userID, "user-id", "", "Local user UUID (generated when omitted)")
	cmd.MarkFlagRequired("user")
	return cmd
}
