package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Arjun1106030909119/MindScribe/pkg/app"
	"github.com/Arjun1106030909119/MindScribe/pkg/backend"
	"github.com/Arjun1106030909119/MindScribe/pkg/commands/options"
	"github.com/Arjun1106030909119/MindScribe/pkg/insight"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mindscribe",
		Short: base.Wrap80("Personal journaling with AI reflections, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addEntries(topLevel)
	addReflect(topLevel)
	addVersion(topLevel)
}

// newService wires the configured collaborators into the shared service.
func newService() (*app.Service, error) {
	cfg, err := backend.LoadConfig()
	if err != nil {
		return nil, err
	}
	cache := backend.NewSessionCache(cfg.CachePath)
	return &app.Service{
		Identity:   backend.NewAuthClient(cfg, cache),
		Repository: backend.NewEntryClient(cfg, cache),
		Analyzer:   insight.New(cfg.APIKey, cfg.Model),
	}, nil
}
