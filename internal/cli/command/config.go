// Package command provides CLI command definitions for logmesh-cli.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/logmesh-go/internal/cli/output"
	"github.com/yndnr/logmesh-go/internal/infra/param"
	"github.com/yndnr/logmesh-go/internal/server/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Server configuration tools",
		Subcommands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Validate a server configuration file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Check every parameter instead of stopping at the first failure",
					},
				},
				Action: configCheck,
			},
			{
				Name:      "show",
				Usage:     "Show the effective configuration with secrets masked",
				ArgsUsage: "FILE",
				Action:    configShow,
			},
		},
	}
}

// ParameterStatus is one row of a check report.
type ParameterStatus struct {
	Key      string `json:"key" yaml:"key"`
	Required bool   `json:"required" yaml:"required"`
	Status   string `json:"status" yaml:"status"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// CheckReport is the result of config check.
type CheckReport struct {
	File        string            `json:"file" yaml:"file"`
	Valid       bool              `json:"valid" yaml:"valid"`
	Parameters  []ParameterStatus `json:"parameters" yaml:"parameters"`
	UnknownKeys []string          `json:"unknown_keys,omitempty" yaml:"unknown_keys,omitempty"`
}

// Table implements output.Tabular.
func (r *CheckReport) Table() *output.Table {
	t := output.NewTable("PARAMETER", "REQUIRED", "STATUS", "MESSAGE")
	for _, p := range r.Parameters {
		t.AddRow(p.Key, strconv.FormatBool(p.Required), p.Status, p.Message)
	}
	for _, k := range r.UnknownKeys {
		t.AddRow(k, "false", "unknown", "not a recognized parameter")
	}
	return t
}

// newCheckReport builds a report from check results. Unless all is set,
// results after the first failure are dropped, matching server startup.
func newCheckReport(file string, results []param.Result, all bool) (*CheckReport, []error) {
	required := make(map[string]bool)
	for _, s := range config.Parameters() {
		required[s.Key] = s.Required
	}

	report := &CheckReport{File: file, Valid: true}
	var errs []error
	for _, res := range results {
		status := ParameterStatus{
			Key:      res.Key,
			Required: required[res.Key],
			Status:   res.Outcome.String(),
		}
		if res.Err != nil {
			status.Message = res.Err.Error()
			errs = append(errs, res.Err)
			report.Valid = false
		}
		report.Parameters = append(report.Parameters, status)
		if res.Err != nil && !all {
			break
		}
	}
	return report, errs
}

func configCheck(c *cli.Context) error {
	src, err := loadSource(c)
	if err != nil {
		return err
	}

	results := config.NewLoader().Check(src)
	report, errs := newCheckReport(src.FilePath(), results, c.Bool("all"))
	report.UnknownKeys = config.UnknownKeys(src.Keys())

	if err := printResult(c, report); err != nil {
		return err
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration is invalid: %w", errors.Join(errs...))
	}
	return nil
}

// configView renders a ServerConfig as FIELD/VALUE rows.
type configView struct {
	config.ServerConfig `yaml:",inline"`
}

// Table implements output.Tabular.
func (v *configView) Table() *output.Table {
	t := output.NewTable("PARAMETER", "VALUE")
	t.AddRow(config.KeyPasswordSecret, v.PasswordSecret)
	t.AddRow(config.KeyRootPasswordSHA2, v.RootPasswordSHA2)
	t.AddRow(config.KeyNodeIDFile, v.NodeIDFile)
	t.AddRow(config.KeyHTTPBindAddress, v.HTTPBindAddress)
	t.AddRow(config.KeyLogLevel, v.Log.Level)
	t.AddRow(config.KeyLogFormat, v.Log.Format)
	return t
}

func configShow(c *cli.Context) error {
	src, err := loadSource(c)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(src)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if unknown := config.UnknownKeys(src.Keys()); len(unknown) > 0 {
		fmt.Fprintf(c.App.ErrWriter, "warning: unknown parameters ignored: %s\n", strings.Join(unknown, ", "))
	}

	return printResult(c, &configView{ServerConfig: *config.Sanitize(cfg)})
}
