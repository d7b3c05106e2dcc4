//go:build (linux || darwin || windows) && (amd64 || arm64)

package json_test

import (
	"testing"

	"github.com/bytedance/sonic"

	"go.dw1.io/poorpigs/json"
	"go.dw1.io/poorpigs/pigs"
)

func stdConfig(escapeHTML bool) *sonic.Config {
	return &sonic.Config{
		EscapeHTML:       escapeHTML,
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
	}
}

func TestSetConfigAppliesToPlanReports(t *testing.T) {
	t.Cleanup(func() { json.SetConfig(stdConfig(true)) })

	short, err := pigs.NewPlan(1000, 15, 45)
	if err != nil {
		t.Fatalf("plan for 45m window: %v", err)
	}
	hour, err := pigs.NewPlan(1000, 15, 60)
	if err != nil {
		t.Fatalf("plan for 60m window: %v", err)
	}
	report := map[string]pigs.Plan{
		"window=1h": hour,
		"window<1h": short,
	}

	const (
		shortJSON = `{"buckets":1000,"minutesToDie":15,"minutesToTest":45,"rounds":3,"states":4,"pigs":5,"capacity":1024,"feasible":true}`
		hourJSON  = `{"buckets":1000,"minutesToDie":15,"minutesToTest":60,"rounds":4,"states":5,"pigs":5,"capacity":3125,"feasible":true}`
	)

	escaped, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal with default config returned error: %v", err)
	}
	wantEscaped := `{"window\u003c1h":` + shortJSON + `,"window=1h":` + hourJSON + `}`
	if string(escaped) != wantEscaped {
		t.Fatalf("marshal with default config = %s, want %s", escaped, wantEscaped)
	}

	json.SetConfig(stdConfig(false))

	plain, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal after SetConfig returned error: %v", err)
	}
	wantPlain := `{"window<1h":` + shortJSON + `,"window=1h":` + hourJSON + `}`
	if string(plain) != wantPlain {
		t.Fatalf("marshal after SetConfig = %s, want %s", plain, wantPlain)
	}
}
