// Package groupby: GroupBy construction and configuration.

package groupby

import (
	"context"
	"fmt"

	"github.com/katalvlaran/larr/core"
)

// Options holds parameters customizing a GroupBy.
type Options struct {
	// Ctx allows cancellation between per-group function calls. Apply
	// checks it before each group and aborts with ctx.Err().
	Ctx context.Context

	// FirstSeen forces first-occurrence key order even for orderable
	// labels (the default orders keys ascending).
	FirstSeen bool
}

// Option configures GroupBy construction via functional arguments.
type Option func(*Options)

// DefaultOptions returns the zero configuration: background context,
// ascending key order.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context consulted between group applications.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFirstSeenOrder keeps group keys in first-occurrence order instead of
// sorting them.
func WithFirstSeenOrder() Option {
	return func(o *Options) { o.FirstSeen = true }
}

// GroupBy is one grouping of an array along one dimension. It is built
// fresh per call, holds a private copy of the source, and never shares
// mutable state with other values; re-running any operation recomputes
// deterministically.
type GroupBy struct {
	arr     *core.Array // private deep copy of the source
	dim     string      // grouped dimension
	name    string      // group key coordinate name on reduce outputs
	keys    []core.Key  // distinct group keys, in output order
	members []membership
	labels  []core.Key // original labels along dim, for transform outputs
	levels  []string   // composite level names when grouping a stacked dim
	opts    Options
}

// New groups a by the coordinate labels of the dimension named group.
// The dimension must exist and carry labels.
//
// The source is deep-copied once here: views handed to user functions are
// backed by the copy, so no user mutation can reach the caller's array.
func New(a *core.Array, group string, opts ...Option) (*GroupBy, error) {
	labels, ok := a.Coord(group)
	if !ok {
		return nil, fmt.Errorf("groupby.New(%q): %w", group, ErrUnknownGroup)
	}
	g := &GroupBy{arr: a.Copy(), dim: group, name: group, labels: labels}
	if lv, isComposite := a.CompositeLevels(group); isComposite {
		g.levels = lv
	}
	return g.finish(opts)
}

// NewByArray groups a by a separate 1-D key array: the key array's sole
// dimension names the dimension of a to partition, and its values are the
// labels. The key array's name becomes the group dimension name on reduce
// outputs (e.g. grouping a "time" series by a "reference_date" key array
// yields a "reference_date" dimension).
func NewByArray(a *core.Array, key *core.Array, opts ...Option) (*GroupBy, error) {
	if key.Ndim() != 1 {
		return nil, fmt.Errorf("groupby.NewByArray: key has %d dims: %w", key.Ndim(), ErrUnknownGroup)
	}
	if key.Name() == "" {
		return nil, fmt.Errorf("groupby.NewByArray: %w", ErrUnnamedKey)
	}
	dim := key.Dims()[0]
	if !a.HasDim(dim) {
		return nil, fmt.Errorf("groupby.NewByArray: key dimension %q: %w", dim, ErrUnknownGroup)
	}
	// The key values themselves are the labels; length agreement with the
	// partitioned dimension is enforced by the index builder.
	vals := key.Values()
	labels := make([]core.Key, len(vals))
	for i, v := range vals {
		labels[i] = v
	}
	g := &GroupBy{arr: a.Copy(), dim: dim, name: key.Name(), labels: labels}
	return g.finish(opts)
}

// NewByLabels groups a along dim by an explicit label sequence; name
// becomes the group dimension name on reduce outputs.
func NewByLabels(a *core.Array, dim, name string, labels []core.Key, opts ...Option) (*GroupBy, error) {
	if !a.HasDim(dim) {
		return nil, fmt.Errorf("groupby.NewByLabels(%q): %w", dim, ErrUnknownGroup)
	}
	if name == "" {
		return nil, fmt.Errorf("groupby.NewByLabels: %w", ErrUnnamedKey)
	}
	g := &GroupBy{arr: a.Copy(), dim: dim, name: name, labels: append([]core.Key(nil), labels...)}
	return g.finish(opts)
}

// finish applies options and builds the group indices.
func (g *GroupBy) finish(opts []Option) (*GroupBy, error) {
	g.opts = DefaultOptions()
	for _, opt := range opts {
		opt(&g.opts)
	}
	n, err := g.arr.SizeOf(g.dim)
	if err != nil {
		return nil, err
	}
	if g.keys, g.members, err = buildIndices(g.labels, n, g.opts.FirstSeen); err != nil {
		return nil, err
	}
	return g, nil
}

// Dim returns the grouped dimension's name.
func (g *GroupBy) Dim() string { return g.dim }

// Name returns the group key coordinate name used on reduce outputs.
func (g *GroupBy) Name() string { return g.name }

// Len returns the number of groups.
func (g *GroupBy) Len() int { return len(g.keys) }

// Keys returns the distinct group keys in output order.
func (g *GroupBy) Keys() []core.Key { return append([]core.Key(nil), g.keys...) }

// GroupSize returns the number of member positions of group i.
func (g *GroupBy) GroupSize(i int) int { return g.members[i].size() }
