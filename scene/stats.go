package scene

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// Build a tabular representation of scene statistics: the number of objects
// of each type broken down by material.
func (s *Scene) Stats() string {
	counts := make(map[string]map[string]int)
	var boxes int
	for _, obj := range s.Objects {
		if obj.Kind == BoxObject {
			boxes++
			continue
		}

		primType := obj.Primitive.Type.String()
		if counts[primType] == nil {
			counts[primType] = make(map[string]int)
		}
		counts[primType][obj.Primitive.Material.Type.String()]++
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Object Type", "Material", "Count"})
	for _, primType := range sortedKeys(counts) {
		total := 0
		for _, count := range counts[primType] {
			total += count
		}
		table.Append([]string{primType, "---", fmt.Sprintf("%d", total)})
		for _, matType := range sortedKeys(counts[primType]) {
			table.Append([]string{"", matType, fmt.Sprintf("%d", counts[primType][matType])})
		}
		table.Append([]string{" ", " ", " "})
	}
	if boxes > 0 {
		table.Append([]string{"box", "---", fmt.Sprintf("%d", boxes)})
	}
	table.SetFooter([]string{"Total", " ", fmt.Sprintf("%d", len(s.Objects))})

	table.Render()
	return buf.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
