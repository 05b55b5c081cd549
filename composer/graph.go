package composer

import (
	"github.com/graphkit/sdlmerge/sdlerrors"
)

// dependencyGraph holds one node per document and an edge for every ordered
// pair the classifier accepts. An edge (A, B) means A must be merged after
// B. Nodes keep their discovery order so ordering ties break
// deterministically across runs.
type dependencyGraph struct {
	docs  []*Document
	edges map[string]map[string]bool // dependent name -> dependency names
}

// buildGraph adds every document as a node, failing fast on duplicate
// names, then classifies all ordered pairs. Document counts are small (tens
// to low hundreds), so the O(N^2) scan is deliberate.
func buildGraph(docs []*Document) (*dependencyGraph, error) {
	g := &dependencyGraph{
		docs:  make([]*Document, 0, len(docs)),
		edges: make(map[string]map[string]bool),
	}

	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		if seen[doc.Name] {
			return nil, &sdlerrors.DuplicateDocumentError{Name: doc.Name}
		}
		seen[doc.Name] = true
		g.docs = append(g.docs, doc)
	}

	for _, a := range g.docs {
		for _, b := range g.docs {
			if isDependentOn(a, b) {
				g.addEdge(a.Name, b.Name)
			}
		}
	}
	return g, nil
}

func (g *dependencyGraph) addEdge(dependent, dependency string) {
	if g.edges[dependent] == nil {
		g.edges[dependent] = make(map[string]bool)
	}
	g.edges[dependent][dependency] = true
}

func (g *dependencyGraph) edgeCount() int {
	n := 0
	for _, deps := range g.edges {
		n += len(deps)
	}
	return n
}

// sort linearizes the graph so every document follows all of its
// dependencies. Each pass places every currently-ready document in
// discovery order, which makes the result a function of the graph alone. A
// pass that places nothing means the remaining documents contain a cycle.
func (g *dependencyGraph) sort() ([]*Document, error) {
	placed := make(map[string]bool, len(g.docs))
	order := make([]*Document, 0, len(g.docs))

	for len(order) < len(g.docs) {
		progressed := false
		for _, doc := range g.docs {
			if placed[doc.Name] || !g.ready(doc.Name, placed) {
				continue
			}
			placed[doc.Name] = true
			order = append(order, doc)
			progressed = true
		}
		if !progressed {
			return nil, &sdlerrors.CycleError{Documents: g.cycleMembers(placed)}
		}
	}
	return order, nil
}

// ready reports whether every dependency of the named document has already
// been placed.
func (g *dependencyGraph) ready(name string, placed map[string]bool) bool {
	for dep := range g.edges[name] {
		if !placed[dep] {
			return false
		}
	}
	return true
}

// cycleMembers trims the unplaced documents down to those actually on a
// cycle. A node with no unplaced dependency, or that no unplaced node
// depends on, cannot be a cycle member; peeling those off repeatedly leaves
// exactly the union of cycles. Members are reported in discovery order.
func (g *dependencyGraph) cycleMembers(placed map[string]bool) []string {
	remaining := make(map[string]bool)
	for _, doc := range g.docs {
		if !placed[doc.Name] {
			remaining[doc.Name] = true
		}
	}

	for {
		peeled := false
		for _, doc := range g.docs {
			name := doc.Name
			if !remaining[name] {
				continue
			}
			if !g.hasDependencyIn(name, remaining) || !g.hasDependentIn(name, remaining) {
				delete(remaining, name)
				peeled = true
			}
		}
		if !peeled {
			break
		}
	}

	members := make([]string, 0, len(remaining))
	for _, doc := range g.docs {
		if remaining[doc.Name] {
			members = append(members, doc.Name)
		}
	}
	return members
}

func (g *dependencyGraph) hasDependencyIn(name string, within map[string]bool) bool {
	for dep := range g.edges[name] {
		if within[dep] {
			return true
		}
	}
	return false
}

func (g *dependencyGraph) hasDependentIn(name string, within map[string]bool) bool {
	for other := range within {
		if other != name && g.edges[other][name] {
			return true
		}
	}
	return false
}
