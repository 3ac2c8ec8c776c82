package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	planning "github.com/reframe-systems/tesseract-planning"
	"github.com/reframe-systems/tesseract-planning/internal/cli"
	"github.com/reframe-systems/tesseract-planning/internal/logging"
	"github.com/reframe-systems/tesseract-planning/internal/observability"
	"github.com/reframe-systems/tesseract-planning/pkg/adapters/redis"
	"github.com/reframe-systems/tesseract-planning/pkg/adapters/scene"
	"github.com/reframe-systems/tesseract-planning/pkg/composer"
	"github.com/reframe-systems/tesseract-planning/pkg/domain"
	"github.com/reframe-systems/tesseract-planning/pkg/nodes"
	"github.com/reframe-systems/tesseract-planning/pkg/ports"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the discrete contact check against a trajectory",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("trajectory", "", "Trajectory document (YAML)")
	checkCmd.Flags().String("scene", "", "Scene document (YAML)")
	checkCmd.Flags().String("profiles", "", "Profiles document (YAML)")
	checkCmd.Flags().String("key", "input_program", "Storage key to run the check against")
	checkCmd.Flags().String("redis", "", "Redis address for shared storage (default: in-memory)")
	checkCmd.Flags().String("metrics-addr", "", "Expose /metrics and /healthz on this address")
	_ = checkCmd.MarkFlagRequired("trajectory")
	_ = checkCmd.MarkFlagRequired("scene")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	trajectoryPath, _ := cmd.Flags().GetString("trajectory")
	scenePath, _ := cmd.Flags().GetString("scene")
	profilesPath, _ := cmd.Flags().GetString("profiles")
	key, _ := cmd.Flags().GetString("key")
	redisAddr, _ := cmd.Flags().GetString("redis")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	sc, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	traj, err := cli.LoadTrajectory(trajectoryPath)
	if err != nil {
		return err
	}
	dict, remap, err := cli.LoadProfiles(profilesPath)
	if err != nil {
		return err
	}

	var storage ports.DataStorage
	if redisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: redisAddr})
		defer client.Close()
		storage = redis.NewStorage(client, "contactgate:")
	}

	metrics := observability.New()
	if metricsAddr != "" {
		srv := cli.ServeDiagnostics(metricsAddr, metrics, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	opts := []planning.Option{
		planning.WithProfiles(dict),
		planning.WithProfileRemapping(remap),
		planning.WithLogger(logger),
		planning.WithMetrics(metrics),
	}
	if storage != nil {
		opts = append(opts, planning.WithStorage(storage))
	}
	runner := planning.New(opts...)

	ctx := cmd.Context()
	if err := runner.Storage().Set(ctx, key, domain.TrajectoryValue(traj)); err != nil {
		return fmt.Errorf("storing trajectory: %w", err)
	}

	task := nodes.NewDiscreteContactCheckTaskWithKey(nodes.DiscreteContactCheckKind, key, true)
	env := scene.NewEnvironment(sc)
	manip := domain.ManipulatorInfo{GroupName: sc.Group}

	info := runner.Run(ctx, task, env, manip)
	cli.RenderReport(os.Stdout, info)

	if info.ReturnValue != composer.ReturnSuccess {
		os.Exit(1)
	}
	return nil
}
