package dot_test

import (
	"strings"
	"testing"

	"github.com/gopherrouting/ddpp/dot"
	"github.com/stretchr/testify/require"
)

const sample = `graph topology {
	// a line comment
	0 -- 1 [weight=5, su="0-8"];
	1 -- 2 [weight=3.5, su="0-4,6-10"];
}
`

func TestLoad_ParsesVerticesEdgesWeightsAndSpectrum(t *testing.T) {
	g, err := dot.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Len(t, g.Edges(), 2)

	e0 := g.Edges()[0]
	require.Equal(t, 5.0, e0.Weight)
	require.Len(t, e0.SU.Intervals(), 1)

	e1 := g.Edges()[1]
	require.Equal(t, 3.5, e1.Weight)
	require.Len(t, e1.SU.Intervals(), 2)
}

func TestLoad_RejectsMissingWeight(t *testing.T) {
	_, err := dot.Load(strings.NewReader("graph g {\n0 -- 1 [su=\"0-4\"];\n}\n"))
	require.ErrorIs(t, err, dot.ErrMissingWeight)
}

func TestLoad_RejectsMissingSU(t *testing.T) {
	_, err := dot.Load(strings.NewReader("graph g {\n0 -- 1 [weight=1];\n}\n"))
	require.ErrorIs(t, err, dot.ErrMissingSU)
}

func TestLoad_RejectsMalformedLine(t *testing.T) {
	_, err := dot.Load(strings.NewReader("graph g {\nnot an edge statement\n}\n"))
	require.ErrorIs(t, err, dot.ErrSyntax)
}
