// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carnotchain/carnot/carnot"
	"github.com/carnotchain/carnot/config"
	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/log"
	"github.com/carnotchain/carnot/metrics"
	"github.com/carnotchain/carnot/overlay"
	"github.com/carnotchain/carnot/types"
)

// runCmd builds the overlay and one node's Carnot state from genesis, then
// reports the leader the overlay's selector names for each of a fixed
// number of views. It does not step the state machine or exchange any
// messages. It exists to exercise the wiring end to end on a laptop without
// a real network adapter.
func runCmd() *cobra.Command {
	var (
		numNodes      int
		numCommittees int
		views         int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single Carnot instance from genesis for a fixed number of views",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes := make([]ids.NodeID, numNodes)
			for i := range nodes {
				var id ids.NodeID
				if _, err := rand.Read(id[:]); err != nil {
					return fmt.Errorf("generate node id: %w", err)
				}
				nodes[i] = id
			}

			cfg, err := config.NewBuilder().
				WithNodeID(nodes[0]).
				WithNodes(nodes).
				WithNumberOfCommittees(numCommittees).
				WithViewTimeout(2 * time.Second).
				Build()
			if err != nil {
				return err
			}

			tree, err := overlay.New(cfg.Nodes, cfg.SeedEntropy, cfg.NumberOfCommittees, cfg.LeaderSelectorObject(), cfg.ShufflerObject())
			if err != nil {
				return err
			}

			logger := log.NewNoOp()
			reg := metrics.NoOp()
			c, err := carnot.FromGenesis(cfg.NodeID, types.GenesisBlock(), tree, logger, reg)
			if err != nil {
				return err
			}

			fmt.Printf("started node=%s view=%d root=%s\n", cfg.NodeID, c.CurrentView(), c.RootCommittee().ID())
			for v := types.View(0); v < types.View(views); v++ {
				fmt.Printf("view=%d leader=%s is_leader=%v\n", v, c.Leader(v), c.IsLeaderForView(v))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&numNodes, "nodes", 10, "number of validators")
	cmd.Flags().IntVar(&numCommittees, "committees", 3, "number of committees (must be odd)")
	cmd.Flags().IntVar(&views, "views", 5, "number of views to report leaders for")
	return cmd
}
