package main

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quakemap/internal/config"
	"quakemap/internal/feed"
	"quakemap/internal/tui"
)

var (
	cfg        *config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "quakemap",
	Short: "Terminal map of recent earthquakes and the cities they threaten",
	Long:  "Loads country borders, cities and an earthquake feed, then shows them on an interactive terminal map. Click a city to see the quakes threatening it.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}
		p := tea.NewProgram(tui.New(ds, cfg.Report.Top), tea.WithAltScreen(), tea.WithMouseAllMotion())
		if _, err := p.Run(); err != nil {
			return eris.Wrap(err, "run map")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml)")
	rootCmd.AddCommand(reportCmd)
}

func loadDataset(ctx context.Context) (*feed.Dataset, error) {
	src := feed.Sources{
		Countries: cfg.Data.Countries,
		Cities:    cfg.Data.Cities,
		Quakes:    cfg.Data.Quakes,
		Timeout:   cfg.Data.Timeout(),
	}
	ds, err := feed.Load(ctx, src, time.Now())
	if err != nil {
		zap.L().Error("load dataset", zap.Error(err))
		return nil, eris.Wrap(err, "load dataset")
	}
	return ds, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
