// File: unpack.go
// Role: §4.E3 path unpacking — expands a chGraph path (which may include
//       shortcuts) into the concrete path over the original graph.
package ch

// Unpack returns the concrete shortest s->t path in the original graph,
// or nil if none exists. s == t returns []N{s}. Unpack must only be
// called after Preprocess has returned.
func (c *ContractionHierarchy[N]) Unpack(s, t N) []N {
	_, chPath, ok := c.queryWithPath(s, t)
	if !ok {
		return nil
	}
	return c.expandPath(chPath)
}

// expandPath recursively expands every edge of a chGraph path, replacing
// each shortcut with its two constituent edges (themselves possibly
// shortcuts) until only original-graph edges remain.
func (c *ContractionHierarchy[N]) expandPath(chPath []N) []N {
	if len(chPath) == 0 {
		return nil
	}
	out := []N{chPath[0]}
	for i := 0; i+1 < len(chPath); i++ {
		out = append(out, c.expandEdge(chPath[i], chPath[i+1])...)
	}
	return out
}

// expandEdge returns the expansion of edge a->b, excluding a, including b:
// unpack(a,m) ++ unpack(m,b) if a->b is the shortcut recorded via m,
// otherwise just [b].
func (c *ContractionHierarchy[N]) expandEdge(a, b N) []N {
	mid, ok := c.shortcutWitness[pairKey[N]{u: a, v: b}]
	if !ok {
		return []N{b}
	}
	return append(c.expandEdge(a, mid), c.expandEdge(mid, b)...)
}
