package config

import (
	"fmt"
	"partgen/pkg/partition"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// 命令行参数名
const (
	FlagStart   = "start"
	FlagEnd     = "end"
	FlagConfig  = "config"
	FlagVerbose = "verbose"
)

// Config 运行配置
// 优先级：嵌入默认值 < 配置文件 < 环境变量 < 命令行参数
type Config struct {
	Start      string
	End        string
	ConfigFile string
	Verbose    bool
}

// envConfig 环境变量映射
type envConfig struct {
	Start      string `env:"PARTGEN_START"`
	End        string `env:"PARTGEN_END"`
	ConfigFile string `env:"PARTGEN_CONFIG"`
	Verbose    bool   `env:"PARTGEN_VERBOSE"`
}

// RegisterFlags 注册命令行参数
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagStart, "", "起始日期（含），YYYY-MM-DD 或 YYYY-MM")
	flags.String(FlagEnd, "", "结束日期（不含），YYYY-MM-DD 或 YYYY-MM")
	flags.String(FlagConfig, "", "YAML 范围配置文件路径")
	flags.BoolP(FlagVerbose, "v", false, "输出调试日志")
}

// Load 按优先级合并配置；flags 可为 nil
func Load(flags *pflag.FlagSet) (*Config, error) {
	def, err := partition.DefaultRangeFile()
	if err != nil {
		return nil, fmt.Errorf("加载默认配置失败: %w", err)
	}
	if _, err := def.Range(); err != nil {
		return nil, fmt.Errorf("默认配置范围无效: %w", err)
	}
	cfg := &Config{Start: def.Start, End: def.End}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// 先确定配置文件路径，文件内容位于环境变量之下
	cfg.ConfigFile = ec.ConfigFile
	if s, ok := changedString(flags, FlagConfig); ok {
		cfg.ConfigFile = s
	}
	if cfg.ConfigFile != "" {
		rf, err := partition.LoadRangeFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		// 文件同时给出首尾时就地校验，便于定位是哪个文件出错
		if rf.Start != "" && rf.End != "" {
			if _, err := rf.Range(); err != nil {
				return nil, fmt.Errorf("配置文件 %s 范围无效: %w", cfg.ConfigFile, err)
			}
		}
		overlay(&cfg.Start, rf.Start)
		overlay(&cfg.End, rf.End)
	}

	overlay(&cfg.Start, ec.Start)
	overlay(&cfg.End, ec.End)
	cfg.Verbose = ec.Verbose

	if s, ok := changedString(flags, FlagStart); ok {
		cfg.Start = s
	}
	if s, ok := changedString(flags, FlagEnd); ok {
		cfg.End = s
	}
	if flags != nil && flags.Changed(FlagVerbose) {
		v, err := flags.GetBool(FlagVerbose)
		if err != nil {
			return nil, err
		}
		cfg.Verbose = v
	}

	return cfg, nil
}

// Range 解析为分区范围
func (c *Config) Range() (partition.Range, error) {
	return partition.ParseRange(c.Start, c.End)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func changedString(flags *pflag.FlagSet, name string) (string, bool) {
	if flags == nil || !flags.Changed(name) {
		return "", false
	}
	s, err := flags.GetString(name)
	if err != nil {
		return "", false
	}
	return s, true
}
