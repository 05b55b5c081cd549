package composer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/sdlmerge/sdlerrors"
)

func docNames(order []*Document) []string {
	names := make([]string, 0, len(order))
	for _, doc := range order {
		names = append(names, doc.Name)
	}
	return names
}

func TestBuildGraph_DuplicateName(t *testing.T) {
	a := mustParse(t, "user.graphql", `type User { name: String }`)
	b := mustParse(t, "user.graphql", `type Account { id: ID }`)

	_, err := buildGraph([]*Document{a, b})
	require.Error(t, err)
	assert.ErrorIs(t, err, sdlerrors.ErrDuplicateDocument)

	var dupErr *sdlerrors.DuplicateDocumentError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "user.graphql", dupErr.Name)
}

func TestBuildGraph_NoSelfEdges(t *testing.T) {
	// A document that defines and uses its own directive gains no edge.
	a := mustParse(t, "a.graphql", `
		directive @foo on FIELD_DEFINITION
		type Query { ping: String @foo }
	`)

	g, err := buildGraph([]*Document{a})
	require.NoError(t, err)
	assert.Equal(t, 0, g.edgeCount())
}

func TestBuildGraph_CollapsesMultipleReasonsToOneEdge(t *testing.T) {
	base := mustParse(t, "base.graphql", `
		directive @auth on FIELD_DEFINITION
		type Query { ping: String }
	`)
	// ext both extends Query and applies @auth: still one edge.
	ext := mustParse(t, "ext.graphql", `extend type Query { pong: String @auth }`)

	g, err := buildGraph([]*Document{base, ext})
	require.NoError(t, err)
	assert.Equal(t, 1, g.edgeCount())
	assert.True(t, g.edges["ext.graphql"]["base.graphql"])
}

func TestSort_DependencyPrecedesDependent(t *testing.T) {
	base := mustParse(t, "base.graphql", `type Query { ping: String }`)
	ext := mustParse(t, "ext.graphql", `extend type Query { pong: String }`)

	// Discovery order deliberately lists the dependent first.
	g, err := buildGraph([]*Document{ext, base})
	require.NoError(t, err)

	order, err := g.sort()
	require.NoError(t, err)
	assert.Equal(t, []string{"base.graphql", "ext.graphql"}, docNames(order))
}

func TestSort_TiesBreakByDiscoveryOrder(t *testing.T) {
	a := mustParse(t, "a.graphql", `type Alpha { id: ID }`)
	b := mustParse(t, "b.graphql", `type Beta { id: ID }`)
	c := mustParse(t, "c.graphql", `type Gamma { id: ID }`)

	g, err := buildGraph([]*Document{c, a, b})
	require.NoError(t, err)

	order, err := g.sort()
	require.NoError(t, err)
	assert.Equal(t, []string{"c.graphql", "a.graphql", "b.graphql"}, docNames(order))
}

func TestSort_Deterministic(t *testing.T) {
	docs := []*Document{
		mustParse(t, "user.graphql", `type User { name: String, role: Role }`),
		mustParse(t, "role.graphql", `enum Role { ADMIN MEMBER }`),
		mustParse(t, "query.graphql", `type Query { user: User }`),
		mustParse(t, "unrelated.graphql", `scalar DateTime`),
	}

	var first []string
	for i := 0; i < 20; i++ {
		g, err := buildGraph(docs)
		require.NoError(t, err)
		order, err := g.sort()
		require.NoError(t, err)
		if first == nil {
			first = docNames(order)
			continue
		}
		require.Equal(t, first, docNames(order), "order must not depend on incidental iteration order")
	}
}

func TestSort_CycleError(t *testing.T) {
	x := mustParse(t, "x.graphql", `
		type X { id: ID }
		extend type Y { x: X }
	`)
	y := mustParse(t, "y.graphql", `
		type Y { id: ID }
		extend type X { y: Y }
	`)

	g, err := buildGraph([]*Document{x, y})
	require.NoError(t, err)

	_, err = g.sort()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sdlerrors.ErrCycle))

	var cycleErr *sdlerrors.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"x.graphql", "y.graphql"}, cycleErr.Documents)
}

func TestSort_CycleErrorExcludesDownstreamDocuments(t *testing.T) {
	x := mustParse(t, "x.graphql", `
		type X { id: ID }
		extend type Y { x: X }
	`)
	y := mustParse(t, "y.graphql", `
		type Y { id: ID }
		extend type X { y: Y }
	`)
	// z depends on the cycle but is not part of it.
	z := mustParse(t, "z.graphql", `type Query { x: X }`)

	g, err := buildGraph([]*Document{x, y, z})
	require.NoError(t, err)

	_, err = g.sort()
	var cycleErr *sdlerrors.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"x.graphql", "y.graphql"}, cycleErr.Documents)
}
