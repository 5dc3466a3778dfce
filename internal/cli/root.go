package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/josumamgar-gif/App-Aqualan/internal/app"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	"github.com/spf13/cobra"
)

// state is shared by every subcommand of one invocation.
type state struct {
	configPath string
	ephemeral  bool
	verbose    bool

	cfg   *config.Config
	svc   *app.Services
	store storage.Store
}

func NewRootCommand() *cobra.Command {

	st := &state{}

	root := &cobra.Command{
		Use:           "aqualanctl",
		Short:         "Browse the Aqualan catalog, manage the cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return st.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&st.configPath, "config", "c", "", "path to the config file (defaults to environment variables)")
	flags.BoolVar(&st.ephemeral, "ephemeral", false, "keep the cart and order history in memory for this run only")
	flags.BoolVarP(&st.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newCategoriesCommand(st),
		newProductsCommand(st),
		newProductCommand(st),
		newCartCommand(st),
		newDeliveryCommand(st),
		newCheckoutCommand(st),
		newOrdersCommand(st),
		newOfferCommand(st),
	)

	return root
}

func (s *state) open(cmd *cobra.Command) error {

	level := "warn"
	if s.verbose {
		level = "debug"
	}
	slog.SetDefault(app.NewLogger("local", level, cmd.ErrOrStderr()))

	var err error
	if s.configPath != "" {
		s.cfg, err = config.LoadConfigFromPath(s.configPath)
	} else {
		s.cfg, err = config.LoadConfigFromEnv()
	}
	if err != nil {
		return err
	}

	var backends storage.Backends
	if s.ephemeral {
		s.store = storage.NewMemoryStore()
	} else {
		s.store, backends, err = storage.Open(cmd.Context(), &s.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
	}

	s.svc, err = app.NewServices(s.cfg, s.store, backends)
	return err
}

func (s *state) close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {

	root := NewRootCommand()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", describe(err))
		return 1
	}

	return 0
}
