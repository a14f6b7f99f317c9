// Package cli turns Icinga notification command arguments into an alert.
package cli

import (
	"fmt"

	"IcingaMattermostBot/internal/app"
	"IcingaMattermostBot/internal/config"
	ent "IcingaMattermostBot/internal/entity"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NotifierFactory builds the notifier once configuration is known.
type NotifierFactory func(cfg *config.Config) (app.AlertNotifier, error)

type alertFlag struct {
	target    *string
	name      string
	shorthand string
	usage     string
	required  bool
}

func alertFlags(a *ent.AlertFields) []alertFlag {
	return []alertFlag{
		{&a.DateTime, "datetime", "d", "Long date time", true},
		{&a.HostName, "hostname", "l", "Host name", true},
		{&a.HostDisplayName, "hostdisplayname", "n", "Host display name", true},
		{&a.Output, "output", "o", "Check output", true},
		{&a.State, "state", "s", "Host or service state", true},
		{&a.NotificationType, "notificationtype", "t", "Notification type", true},

		{&a.UserEmail, "useremail", "r", "User email", false},
		{&a.HostAddress, "hostaddress", "4", "IPv4 address", false},
		{&a.HostAddress6, "hostaddress6", "6", "IPv6 address", false},
		{&a.HostNotes, "hostnotes", "X", "Host notes", false},
		{&a.ServiceNotes, "servicenotes", "x", "Service notes", false},
		{&a.Author, "author", "b", "Notification author", false},
		{&a.Comment, "comment", "c", "Notification comment", false},
		{&a.IcingaURL, "icingaurl", "i", "Icinga Web 2 URL", false},
		{&a.ServiceName, "servicename", "e", "Service name (empty for host notifications)", false},
		{&a.ServiceDisplayName, "servicedisplayname", "u", "Service display name (empty for host notifications)", false},
	}
}

// BindAlertFlags registers the alert fields on fs and returns the names of
// the required ones.
func BindAlertFlags(fs *pflag.FlagSet, a *ent.AlertFields) []string {
	var required []string
	for _, f := range alertFlags(a) {
		fs.StringVarP(f.target, f.name, f.shorthand, "", f.usage)
		if f.required {
			required = append(required, f.name)
		}
	}
	return required
}

// NewAlertCommand returns the root command. v receives the ambient flags so
// they take precedence over file and environment settings.
func NewAlertCommand(v *viper.Viper, newNotifier NotifierFactory) *cobra.Command {
	var (
		alert      ent.AlertFields
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "icinga-mattermost",
		Short: "Post an Icinga host or service notification to Mattermost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flags are valid from here on; later errors are not usage errors.
			cmd.SilenceUsage = true

			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validating config: %w", err)
			}

			notifier, err := newNotifier(cfg)
			if err != nil {
				return err
			}
			// Failures past this point go to the structured log.
			cmd.SilenceErrors = true
			return notifier.Notify(cmd.Context(), alert)
		},
	}

	fs := cmd.Flags()
	for _, name := range BindAlertFlags(fs, &alert) {
		_ = cmd.MarkFlagRequired(name)
	}

	fs.StringVar(&configPath, "config", "", "Path to the YAML config file")
	fs.String("sink", config.SinkMattermost, "Where to send the notification: mattermost, telegram or stdout")
	fs.Bool("dry-run", false, "Print the payload instead of sending it")
	fs.String("log-level", "info", "Log level: trace, debug, info, warning, error")
	fs.String("log-format", "", "Log format: 'json' or empty for console")

	_ = v.BindPFlag("sink", fs.Lookup("sink"))
	_ = v.BindPFlag("dry_run", fs.Lookup("dry-run"))
	_ = v.BindPFlag("log_level", fs.Lookup("log-level"))
	_ = v.BindPFlag("log_format", fs.Lookup("log-format"))

	return cmd
}
