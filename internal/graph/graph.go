package graph

import (
	"context"
	"slices"

	"github.com/specialistvlad/decisiongrid/internal/calcerr"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/specialistvlad/decisiongrid/internal/inmemorystore"
	"github.com/specialistvlad/decisiongrid/internal/node"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/schema"
	"github.com/specialistvlad/decisiongrid/internal/telemetry"
)

// Graph owns the blocks of one request.
type Graph struct {
	nodes   *inmemorystore.Store[int, node.Node]
	env     *node.Env
	metrics *telemetry.Metrics

	// Adjacency in connection order. Filled by link once topology checks
	// pass.
	out map[int][]node.Node
	in  map[int][]node.Node
}

// New builds every block of descs, in declaration order. Unknown methods,
// malformed matrices and wrong field shapes fail here.
func New(ctx context.Context, descs []schema.Node, reg *registry.Registry, opts ...Option) (*Graph, error) {
	g := &Graph{
		nodes: inmemorystore.New[int, node.Node](),
		env:   node.NewEnv(reg, nil),
	}
	for _, opt := range opts {
		opt(g)
	}

	logger := ctxlog.FromContext(ctx)
	for _, desc := range descs {
		if _, dup := g.nodes.Get(desc.ID); dup {
			return nil, g.fail(calcerr.New(ctx, calcerr.Structure, i18n.StructureDuplicateID, desc.ID))
		}
		n, err := node.Build(ctx, desc, reg)
		if err != nil {
			return nil, g.fail(err)
		}
		g.nodes.Set(n.ID(), n)
	}
	logger.Debug("Graph built.", "nodes", g.nodes.Len())
	return g, nil
}

func (g *Graph) node(id int) (node.Node, bool) { return g.nodes.Get(id) }

// ofKind returns the blocks of kind k in declaration order.
func (g *Graph) ofKind(k node.Kind) []node.Node {
	var out []node.Node
	for _, n := range g.nodes.Values() {
		if n.Kind() == k {
			out = append(out, n)
		}
	}
	return out
}

// link resolves both connection lists into adjacency. An edge exists when
// either endpoint declares it; the declaring side's order wins.
func (g *Graph) link() {
	g.out = map[int][]node.Node{}
	g.in = map[int][]node.Node{}
	add := func(from, to node.Node) {
		if !slices.Contains(g.out[from.ID()], to) {
			g.out[from.ID()] = append(g.out[from.ID()], to)
		}
		if !slices.Contains(g.in[to.ID()], from) {
			g.in[to.ID()] = append(g.in[to.ID()], from)
		}
	}
	for _, n := range g.nodes.Values() {
		for _, id := range n.To() {
			to, _ := g.node(id)
			add(n, to)
		}
	}
	for _, n := range g.nodes.Values() {
		for _, id := range n.From() {
			from, _ := g.node(id)
			add(from, n)
		}
	}
}

// outOf returns the successors of n with kind k.
func (g *Graph) outOf(n node.Node, k node.Kind) []node.Node {
	var out []node.Node
	for _, s := range g.out[n.ID()] {
		if s.Kind() == k {
			out = append(out, s)
		}
	}
	return out
}

func (g *Graph) hasInbound(n node.Node, k node.Kind) bool {
	for _, p := range g.in[n.ID()] {
		if p.Kind() == k {
			return true
		}
	}
	return false
}

func (g *Graph) fail(err error) error {
	g.metrics.Failed(calcerr.CategoryOf(err).String())
	return err
}
