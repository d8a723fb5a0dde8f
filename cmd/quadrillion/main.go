package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/quadrillion/internal/game"
	"svw.info/quadrillion/internal/infrastructure/storage"
	"svw.info/quadrillion/internal/solver"
	"svw.info/quadrillion/internal/usecase"
)

var (
	dataDir  string
	logLevel string
	layoutID string
	saveName string
)

func main() {
	root := &cobra.Command{
		Use:           "quadrillion",
		Short:         "Solve and hint the Quadrillion tiling puzzle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "./layouts", "layout save directory")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Place every unplaced shape onto the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssist(cmd, false)
		},
	}
	hintCmd := &cobra.Command{
		Use:   "hint",
		Short: "Place a single shape as a hint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssist(cmd, true)
		},
	}
	for _, c := range []*cobra.Command{solveCmd, hintCmd} {
		c.Flags().StringVar(&layoutID, "layout", "", "start from a saved layout ID")
		c.Flags().StringVar(&saveName, "save", "", "save the resulting layout under this name")
	}

	layoutsCmd := &cobra.Command{
		Use:   "layouts",
		Short: "List saved layouts",
		RunE:  runLayouts,
	}

	root.AddCommand(solveCmd, hintCmd, layoutsCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newService() (*usecase.Service, error) {
	g, err := game.NewDefault()
	if err != nil {
		return nil, err
	}
	assistant := solver.NewCSPAdapter(g, solver.DefaultPruneParams(), newLogger(logLevel))
	return usecase.NewService(assistant, storage.NewFS(dataDir), g), nil
}

func runAssist(cmd *cobra.Command, hint bool) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	if layoutID != "" {
		if err := svc.LoadLayout(cmd.Context(), layoutID); err != nil {
			return err
		}
	}
	assist := svc.Solve
	if hint {
		assist = svc.Help
	}
	st, err := assist(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(renderBoard(svc.Game))
	fmt.Printf("nodes=%d dur=%v won=%v\n", st.Nodes, st.Duration, svc.Game.IsWon())
	if saveName != "" {
		l, err := svc.SaveLayout(cmd.Context(), saveName)
		if err != nil {
			return err
		}
		fmt.Println("saved layout", l.ID)
	}
	return nil
}

func runLayouts(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	metas, err := svc.ListLayouts(cmd.Context())
	if err != nil {
		return err
	}
	for _, m := range metas {
		fmt.Printf("%s\t%s\n", m.ID, m.Name)
	}
	return nil
}
