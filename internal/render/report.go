package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/seqlab/prothub/internal/graph"
)

// ReportItem matches the JSON/CSV structure.
type ReportItem struct {
	Gene   string `json:"gene"`
	Degree int    `json:"degree"`
	IsHub  bool   `json:"is_hub"`
}

// BuildReport lists every node with its degree and hub flag, ranked the
// same way the hub ranker ranks them.
func BuildReport(g *graph.Graph, hubs []string) []ReportItem {
	hubSet := make(map[string]bool, len(hubs))
	for _, h := range hubs {
		hubSet[h] = true
	}

	ranked := graph.TopHubs(g, g.NodeCount())
	items := make([]ReportItem, 0, len(ranked))
	for _, name := range ranked {
		idx, _ := g.GetID(name)
		items = append(items, ReportItem{
			Gene:   name,
			Degree: g.Degree(idx),
			IsHub:  hubSet[name],
		})
	}
	return items
}

// WriteJSON writes the hub report to a JSON file.
func WriteJSON(g *graph.Graph, hubs []string, path string) error {
	data, err := MarshalReport(g, hubs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MarshalReport renders the report as indented JSON.
func MarshalReport(g *graph.Graph, hubs []string) ([]byte, error) {
	items := BuildReport(g, hubs)
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// WriteCSV writes the hub report to a CSV file.
func WriteCSV(g *graph.Graph, hubs []string, path string) error {
	items := BuildReport(g, hubs)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Gene", "Degree", "IsHub"}); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			item.Gene,
			fmt.Sprintf("%d", item.Degree),
			fmt.Sprintf("%t", item.IsHub),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
