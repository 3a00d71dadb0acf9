// Package catalog holds the static table of recognized work types. It is the
// source of truth for point values at submit/edit time; entries keep the
// points they were stamped with even if this table changes later.
package catalog

import "sort"

type TaskDefinition struct {
	Points   int    `json:"points"`
	Category string `json:"category"`
}

var taskDefinitions = map[string]TaskDefinition{
	"Cooking":                   {Points: 10, Category: "Food"},
	"Washing utensils":          {Points: 3, Category: "Washing utensils"},
	"Cleaning floor with broom": {Points: 3, Category: "Cleaning room with broom"},
	"Cleaning floor with mob":   {Points: 5, Category: "Clean the room using mob"},
	"Cleaning the toilet":       {Points: 8, Category: "Cleaning the toilet"},
}

// Lookup returns the definition for a work type, and whether it exists.
func Lookup(workType string) (TaskDefinition, bool) {
	def, ok := taskDefinitions[workType]
	return def, ok
}

// WorkTypes returns all recognized work type names in stable order.
func WorkTypes() []string {
	names := make([]string, 0, len(taskDefinitions))
	for name := range taskDefinitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
