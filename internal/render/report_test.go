package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/seqlab/prothub/internal/graph"
)

func reportGraph() (*graph.Graph, []string) {
	g := graph.Build([]graph.Interaction{
		{Source: "A", Target: "B", Score: 0.9},
		{Source: "A", Target: "C", Score: 0.5},
		{Source: "B", Target: "C", Score: 0.7},
		{Source: "D", Target: "B", Score: 0.6},
	})
	return g, graph.TopHubs(g, 2)
}

func TestMarshalReportGolden(t *testing.T) {
	g, hubs := reportGraph()

	data, err := MarshalReport(g, hubs)
	require.NoError(t, err)

	gold := goldie.New(t)
	gold.Assert(t, "hub_report_json", data)
}

func TestWriteCSVGolden(t *testing.T) {
	g, hubs := reportGraph()

	path := filepath.Join(t.TempDir(), "hub_report.csv")
	require.NoError(t, WriteCSV(g, hubs, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	gold := goldie.New(t)
	gold.Assert(t, "hub_report_csv", data)
}
