// Package command provides CLI command definitions for logmesh-cli.
package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/logmesh-go/internal/cli/output"
	"github.com/yndnr/logmesh-go/internal/core/nodeid"
	"github.com/yndnr/logmesh-go/internal/server/config"
)

// NodeIDCommand returns the node-id subcommand group.
func NodeIDCommand() *cli.Command {
	return &cli.Command{
		Name:  "node-id",
		Usage: "Node identity",
		Subcommands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Show the node id stored at the configured node_id_file",
				ArgsUsage: "FILE",
				Action:    nodeIDShow,
			},
		},
	}
}

// NodeIDView is the result of node-id show.
type NodeIDView struct {
	Path   string `json:"path" yaml:"path"`
	NodeID string `json:"node_id" yaml:"node_id"`
}

// Table implements output.Tabular.
func (v *NodeIDView) Table() *output.Table {
	t := output.NewTable("NODE ID", "PATH")
	t.AddRow(v.NodeID, v.Path)
	return t
}

func nodeIDShow(c *cli.Context) error {
	src, err := loadSource(c)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(src)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.NodeIDFile == "" {
		return errors.New("node_id_file is empty, no node id is persisted")
	}

	id, err := nodeid.Read(cfg.NodeIDFile)
	if errors.Is(err, nodeid.ErrNoID) {
		return fmt.Errorf("no node id stored at %s", cfg.NodeIDFile)
	}
	if err != nil {
		return err
	}

	return printResult(c, &NodeIDView{Path: cfg.NodeIDFile, NodeID: id.String()})
}
