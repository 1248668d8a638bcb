// Package ingest loads a *network.Network from a caller-supplied event
// stream (§6: the OSM-parsing collaborator lives outside this module; only
// the consumer-facing Parser contract lives here).
//
// Design goals, in the teacher's builder-package idiom:
//   - One orchestrator (Load) drives the whole ingestion in a fixed order:
//     nodes first, then edges, mirroring BuildGraph's "resolve config, then
//     apply constructors in order" contract.
//   - Functional LoadOptions resolve into an immutable loadConfig; no global
//     state, determinism for identical input streams.
//   - Keyword lowercasing happens once, here, so downstream lookups
//     (network.NodesWithKeyword, clue.New) never need to normalize again.
package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clueroute/crs/network"
)

// ErrNilParser indicates Load was called with a nil Parser.
var ErrNilParser = errors.New("ingest: parser must not be nil")

// Node is one parsed node record, pre-normalization.
type Node struct {
	ID       int64
	Lat, Lon float64
	Keywords []string
}

// Edge is one parsed edge record.
type Edge struct {
	From, To int64
	Weight   float64
}

// Parser is the consumer-facing contract for a node/edge event stream.
// Implementations return (zero, false, nil) once the stream is exhausted,
// and (zero, false, err) on a read failure.
type Parser interface {
	NextNode() (Node, bool, error)
	NextEdge() (Edge, bool, error)
}

// LoadOption configures Load, resolved into a loadConfig before any node or
// edge is consumed — the same functional-options shape as builder's
// BuilderOption.
type LoadOption func(*loadConfig)

type loadConfig struct {
	haversineRadius float64
}

func newLoadConfig(opts ...LoadOption) loadConfig {
	cfg := loadConfig{haversineRadius: network.EarthRadiusMeters}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithHaversineRadius overrides the network's great-circle radius, forwarded
// to network.New — useful for test networks on a non-Earth radius.
func WithHaversineRadius(metres float64) LoadOption {
	return func(cfg *loadConfig) { cfg.haversineRadius = metres }
}

// Load drains parser — every node, then every edge — into a fresh
// *network.Network. Keywords are lowercased before indexing (§4.1/§4.2's
// "keyword" is always treated case-insensitively). Duplicate edges between
// the same pair are merged by minimum weight, handled by
// network.Network.AddEdge itself.
//
// Errors:
//   - ErrNilParser if parser is nil.
//   - Any error the parser itself returns, wrapped with "ingest: %w".
//   - network.AddEdge's validation errors (self-loop, non-positive weight,
//     unknown endpoint), wrapped with edge context.
func Load(parser Parser, opts ...LoadOption) (*network.Network, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	cfg := newLoadConfig(opts...)

	n := network.New(network.WithHaversineRadius(cfg.haversineRadius))

	for {
		node, ok, err := parser.NextNode()
		if err != nil {
			return nil, fmt.Errorf("ingest: reading node: %w", err)
		}
		if !ok {
			break
		}
		n.AddNode(node.ID, node.Lat, node.Lon)
		for _, kw := range node.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if err := n.IndexKeyword(node.ID, kw); err != nil {
				return nil, fmt.Errorf("ingest: indexing keyword %q on node %d: %w", kw, node.ID, err)
			}
		}
	}

	for {
		edge, ok, err := parser.NextEdge()
		if err != nil {
			return nil, fmt.Errorf("ingest: reading edge: %w", err)
		}
		if !ok {
			break
		}
		if err := n.AddEdge(edge.From, edge.To, edge.Weight); err != nil {
			return nil, fmt.Errorf("ingest: edge %d->%d: %w", edge.From, edge.To, err)
		}
	}

	return n, nil
}
