package main

import (
	"fmt"
	"io"
	"os"
	"partgen/internal/config"
	"partgen/pkg/partition"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd 构建根命令，分区子句写入 out，日志只写 stderr
func newRootCmd(out io.Writer) *cobra.Command {
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "partgen",
		Short: "生成按月 RANGE 分区的 PARTITION 子句",
		Long: `按自然月生成 PARTITION ... VALUES LESS THAN (...) 子句，
边界为距起始日期的秒数，最后追加 pMax 兜底分区。
不带参数时范围为 2022-01-01 至 2024-04-01（不含）。`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return reportErr(cmd, err)
			}

			logger, err = newLogger(cfg.Verbose)
			if err != nil {
				return reportErr(cmd, err)
			}

			r, err := cfg.Range()
			if err != nil {
				logger.Error("[Partition] 范围无效", zap.Error(err))
				return err
			}
			logger.Debug("[Partition] 开始生成",
				zap.String("range", r.String()),
				zap.Int("months", r.Months()),
				zap.String("config", cfg.ConfigFile))

			n, err := partition.WriteClause(out, r)
			if err != nil {
				logger.Error("[Partition] 写出失败", zap.Error(err))
				return err
			}
			logger.Debug("[Partition] 生成完成", zap.Int("partitions", n))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

// newLogger 生产配置，默认 Warn 级别，--verbose 时 Debug
func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// reportErr 日志器尚未就绪时直接写 stderr
func reportErr(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "partgen: %v\n", err)
	return err
}
