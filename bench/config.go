package bench

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const envPrefix = "BST_BENCH"

// Config drives a benchmark sweep. Values come from flags, BST_BENCH_*
// environment variables and an optional YAML file, in that precedence.
type Config struct {
	Trials      int      `mapstructure:"trials" yaml:"trials" json:"trials"`
	BaseN       int      `mapstructure:"base-n" yaml:"base-n" json:"base_n"`
	MaxN        int      `mapstructure:"max-n" yaml:"max-n" json:"max_n"`
	Seed        uint64   `mapstructure:"seed" yaml:"seed" json:"seed"`
	Orders      []string `mapstructure:"orders" yaml:"orders" json:"orders"`
	Ops         []string `mapstructure:"ops" yaml:"ops" json:"ops"`
	Impl        string   `mapstructure:"impl" yaml:"impl" json:"impl"`
	Verify      bool     `mapstructure:"verify" yaml:"verify" json:"verify"`
	OutDir      string   `mapstructure:"out-dir" yaml:"out-dir" json:"out_dir"`
	LogFormat   string   `mapstructure:"log-format" yaml:"log-format" json:"log_format"`
	LogFile     string   `mapstructure:"log-file" yaml:"log-file" json:"log_file"`
	MetricsAddr string   `mapstructure:"metrics-addr" yaml:"metrics-addr" json:"metrics_addr"`
}

func DefaultConfig() Config {
	return Config{
		Trials:    5,
		BaseN:     1 << 4,
		MaxN:      1 << 15,
		Orders:    orderNames(AllOrders),
		Ops:       opNames(AllOps),
		Impl:      "bst",
		LogFormat: "console",
	}
}

// BindFlags registers one flag per Config field, defaulted from DefaultConfig.
func BindFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()
	fs.Int("trials", def.Trials, "Number of times each measurement is repeated.")
	fs.Int("base-n", def.BaseN, "Smallest tree size; sizes double from here.")
	fs.Int("max-n", def.MaxN, "Largest tree size.")
	fs.Uint64("seed", def.Seed, "Seed for random insertion and erase orders.")
	fs.StringSlice("orders", def.Orders, "Insertion orders to measure (asc, desc, rnd).")
	fs.StringSlice("ops", def.Ops, "Operations to measure.")
	fs.String("impl", def.Impl, "Tree implementation (bst, btree, tidwall).")
	fs.Bool("verify", def.Verify, "Check tree invariants after every trial.")
	fs.String("out-dir", def.OutDir, "Directory to write report.json into.")
	fs.String("log-format", def.LogFormat, "Log format, console or json.")
	fs.String("log-file", def.LogFile, "Write logs to this file instead of stderr.")
	fs.String("metrics-addr", def.MetricsAddr, "Serve prometheus metrics on this address while running.")
}

// LoadConfig resolves the configuration for fs. configFile may be empty.
func LoadConfig(fs *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be positive; got %d", c.Trials)
	}
	if c.BaseN < 1 {
		return fmt.Errorf("base-n must be positive; got %d", c.BaseN)
	}
	if c.MaxN < c.BaseN {
		return fmt.Errorf("max-n %d is smaller than base-n %d", c.MaxN, c.BaseN)
	}
	if _, err := ParseOrders(c.Orders); err != nil {
		return err
	}
	if _, err := ParseOps(c.Ops); err != nil {
		return err
	}
	if _, err := LoaderFor(c.Impl); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func orderNames(orders []Order) []string {
	names := make([]string, len(orders))
	for i, o := range orders {
		names[i] = string(o)
	}
	return names
}

func opNames(ops []Op) []string {
	names := make([]string, len(ops))
	for i, o := range ops {
		names[i] = string(o)
	}
	return names
}
