package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/hydrotools/gwsim/internal/config"
	"github.com/hydrotools/gwsim/internal/model"
	"github.com/hydrotools/gwsim/internal/nam"
	"github.com/hydrotools/gwsim/internal/solver"
	"github.com/hydrotools/gwsim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	namFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gwsim",
		Short: "groundwater model solver-package tool",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "gwsim.yaml", "run file path (yaml)")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default run file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initRunFile,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")

	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "write the solver control file",
		RunE:  writeControlFile,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show effective parameters and output lines",
		RunE:  showControlFile,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "check the run file for dropped or invalid settings",
		RunE:  checkRunFile,
	}

	loadCmd := &cobra.Command{
		Use:   "load [file.pks]",
		Short: "reattach an existing control file (defaults only)",
		Args:  cobra.ExactArgs(1),
		RunE:  loadControlFile,
	}
	loadCmd.Flags().StringVar(&namFile, "nam", "", "name file for unit resolution")

	editCmd := &cobra.Command{
		Use:   "edit [path]",
		Short: "edit a run file interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFile
			if len(args) == 1 {
				path = args[0]
			}
			return tui.Run(path)
		},
	}

	rootCmd.AddCommand(initCmd, writeCmd, showCmd, checkCmd, loadCmd, editCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initRunFile(cmd *cobra.Command, args []string) error {
	path := configFile
	if len(args) == 1 {
		path = args[0]
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func buildPackage(cfg *config.Config) (*model.Model, *solver.PKS, error) {
	m := cfg.NewModel()
	p, err := solver.New(m, cfg.SolverOptions())
	if err != nil {
		return nil, nil, err
	}
	return m, p, nil
}

func writeControlFile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	m, p, err := buildPackage(cfg)
	if err != nil {
		return err
	}

	for _, finding := range cfg.SolverOptions().Validate() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", finding)
	}

	if err := m.WriteInput(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (unit %d)\n", m.Path(p.FileName()), p.UnitNumber())
	return nil
}

func showControlFile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	m, p, err := buildPackage(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", m.Name())
	fmt.Fprintf(w, "version\t%s\n", m.Version())
	fmt.Fprintf(w, "file\t%s\n", p.FileName())
	fmt.Fprintf(w, "unit\t%d\n", p.UnitNumber())
	w.Flush()

	fmt.Println()
	return p.Write(os.Stdout)
}

func checkRunFile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// the version guard is the one fatal condition
	if _, _, err := buildPackage(cfg); err != nil {
		return err
	}

	findings := cfg.SolverOptions().Validate()
	if len(findings) == 0 {
		fmt.Println("ok")
		return nil
	}
	for _, finding := range findings {
		fmt.Printf("warning: %s\n", finding)
	}
	return nil
}

func loadControlFile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	var ext model.ExtUnitDict
	if namFile != "" {
		ext, err = nam.ParseFile(namFile)
		if err != nil {
			return err
		}
	}

	m := cfg.NewModel()
	p, err := solver.Load(args[0], m, ext)
	if err != nil {
		return err
	}

	fmt.Printf("attached %s as unit %d (%s)\n", args[0], p.UnitNumber(), p.FileName())
	return nil
}
