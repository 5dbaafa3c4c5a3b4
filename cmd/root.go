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
	"io"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notargets/gosph/grid"
	"github.com/notargets/gosph/harmonics"
	"github.com/notargets/gosph/output"
)

var (
	cfgFile    string
	configUsed string
	configErr  error
	verbose    bool

	// Logs go to stderr, stdout carries the tables
	logger = zap.NewNop()
)

// rootCmd writes the reference table when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "gosph",
	Short: "Spherical harmonic reference tables",
	Long: `
Prints a CSV table of the complex spherical harmonics Y_n^m for n in [0, 10],
m in [-n, n], on a grid of 10 polar angles in [0, Pi) and 20 azimuthal angles
in [0, 2Pi), as reference data for other implementations.

Columns are n,m,theta,phi,sph_re,sph_im with theta azimuthal and phi polar,
matching scipy.special.sph_harm(m, n, theta, phi).

gosph > reference.csv`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = initLogger(); err != nil {
			return
		}
		if configUsed != "" {
			logger.Debug("Using config file", zap.String("path", configUsed))
		}
		return configErr
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunReference(cmd.OutOrStdout())
	},
}

// Execute runs the command tree on args with tables going to stdout; the
// caller owns the exit code
func Execute(args []string, stdout io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file for the table command (default is $HOME/.gosph.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

func initLogger() (err error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var l *zap.Logger
	if l, err = config.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			configErr = fmt.Errorf("finding home directory: %w", err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gosph")
	}
	viper.SetEnvPrefix("GOSPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		configUsed = viper.ConfigFileUsed()
	} else if cfgFile != "" {
		// Only an explicitly named file has to exist
		configErr = fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
}

// RunReference writes the fixed reference table to w. It reads no
// configuration.
func RunReference(w io.Writer) (err error) {
	g := grid.Default()
	logger.Debug("Writing reference table",
		zap.Int("numPhis", grid.NumPhis),
		zap.Int("nMax", grid.NMax),
		zap.Int("rows", g.Rows()))
	tw := output.NewCSV(w)
	if err = output.WriteTable(g, harmonics.SphHarm, tw); err != nil {
		// Rows already written stay written; there is no partial output contract
		_ = tw.Close()
		return
	}
	if err = tw.Close(); err != nil {
		return
	}
	logger.Debug("Reference table complete")
	return
}
