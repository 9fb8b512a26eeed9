package libyear_test

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/libyear/pkg/deps"
	"github.com/matzehuels/libyear/pkg/libyear"
)

type exampleRegistry map[string][]deps.Release

func (r exampleRegistry) Releases(_ context.Context, name string) ([]deps.Release, error) {
	return r[name], nil
}

func ExampleBuild() {
	day := func(s string) time.Time {
		t, _ := time.Parse(time.DateOnly, s)
		return t
	}
	registry := exampleRegistry{
		"serde": {
			{Number: "1.0.100", PublishedAt: day("2023-01-01")},
			{Number: "1.0.200", PublishedAt: day("2025-01-01")},
		},
		"log": {
			{Number: "0.4.20", PublishedAt: day("2024-06-01")},
		},
	}
	list := []deps.Dependency{
		{Name: "serde", Version: "1.0.100"},
		{Name: "log", Version: "0.4.20"},
		{Name: "rand", Version: "0.8.5"},
	}

	report, err := libyear.Build(context.Background(), list, registry, libyear.Options{Sort: libyear.SortLibyear})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range report.Entries {
		fmt.Printf("%s %s -> %s: %.2f\n", e.Name, e.CurrentVersion, e.LatestVersion, e.Libyears)
	}
	fmt.Printf("total %.2f, skipped %d\n", report.TotalLibyears, len(report.Failures))
	// Output:
	// serde 1.0.100 -> 1.0.200: 2.00
	// log 0.4.20 -> 0.4.20: 0.00
	// total 2.00, skipped 1
}
