/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/notargets/quadrule/quadrature"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quadrule",
	Short: "One dimensional quadrature rules",
	Long: `
Computes, tabulates and checks one dimensional quadrature rules: Gauss rules
for the classical weights, Lobatto and Radau rules, Newton-Cotes and Adams
rules, Clenshaw-Curtis and Fejer rules and the Kronrod and Patterson extensions.

quadrule rule legendre -n 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = setupLogging(viper.GetString("log-level")); err != nil {
			return
		}
		switch p := viper.GetString("profile"); p {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("unknown profile %q, use cpu or mem", p)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("quadrule", "err", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quadrule.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("format", "table", "output format: table, yaml or json")
	pf.String("solver", "imtqlx", "tridiagonal eigensolver: imtqlx or eigensym")
	pf.String("source", "auto", "rule source: auto, compute or table")
	pf.Int("precision", 16, "significant digits printed in table output")
	pf.String("profile", "", "write a cpu or mem profile to the working directory")
	for _, key := range []string{"log-level", "format", "solver", "source", "precision", "profile"} {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".quadrule")
	}
	viper.SetEnvPrefix("QUADRULE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogging(level string) (err error) {
	var lvl slog.Level
	if err = lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: lvl})))
	return
}

// Settings are the configuration values shared by every command.
type Settings struct {
	Format    string
	Precision int
	Options   quadrature.Options
}

func loadSettings() (s Settings, err error) {
	s.Format = strings.ToLower(viper.GetString("format"))
	switch s.Format {
	case "table", "yaml", "json":
	default:
		err = fmt.Errorf("unknown format %q, use table, yaml or json", s.Format)
		return
	}
	if s.Precision = viper.GetInt("precision"); s.Precision < 1 || s.Precision > 17 {
		err = fmt.Errorf("precision %d out of range 1-17", s.Precision)
		return
	}
	if s.Options.Solver, err = quadrature.ParseSolver(viper.GetString("solver")); err != nil {
		return
	}
	s.Options.Source, err = quadrature.ParseSource(viper.GetString("source"))
	return
}
