// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carnotchain/carnot/config"
	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/overlay"
)

func paramsCmd() *cobra.Command {
	var (
		numNodes      int
		numCommittees int
	)

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Resolve committee sizes and supermajority thresholds for a candidate validator set size",
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
				Build()
			if err != nil {
				return err
			}

			tree, err := overlay.New(cfg.Nodes, cfg.SeedEntropy, cfg.NumberOfCommittees, cfg.LeaderSelectorObject(), cfg.ShufflerObject())
			if err != nil {
				return err
			}

			fmt.Printf("nodes=%d committees=%d\n", numNodes, tree.NumCommittees())
			for i := 0; i < tree.NumCommittees(); i++ {
				c, _ := tree.CommitteeAt(i)
				fmt.Printf("  committee[%d] size=%d id=%s\n", i, c.Len(), c.ID())
			}
			fmt.Printf("leader_supermajority=%d\n", tree.LeaderSuperMajorityThreshold())
			return nil
		},
	}

	cmd.Flags().IntVar(&numNodes, "nodes", 10, "number of validators")
	cmd.Flags().IntVar(&numCommittees, "committees", 3, "number of committees (must be odd)")
	return cmd
}
