package seed

import (
	"testing"

	"service_inventory/internal/domain/entities"
)

func TestDefaultTemplates(t *testing.T) {
	ts, err := DefaultTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ts) != 7 {
		t.Fatalf("expected 7 templates, got %d", len(ts))
	}

	wantKeys := []string{
		entities.ProcessTechnicianAllocation,
		entities.ProcessSiteVisit,
		entities.ProcessIssueAnalysis,
		entities.ProcessAdminReviewBOM,
		entities.ProcessQuotationApproval,
		entities.ProcessOrderExecution,
		entities.ProcessCompletionReview,
	}
	for i, k := range wantKeys {
		if ts[i].Key != k || ts[i].Order != i+1 {
			t.Fatalf("template %d: expected %s/%d, got %s/%d", i, k, i+1, ts[i].Key, ts[i].Order)
		}
		if ts[i].ProcessName[entities.LangTA] == "" {
			t.Fatalf("template %s has no tamil label", k)
		}
		if len(ts[i].DefaultSubProcesses) == 0 {
			t.Fatalf("template %s has no sub-processes", k)
		}
	}

	site := ts[1]
	if _, ok := site.SubProcessDefinition(entities.SubArrivalConfirmation); !ok {
		t.Fatalf("site visit must define arrival confirmation")
	}
	if _, ok := ts[2].SubProcessDefinition("Initial Observation"); !ok {
		t.Fatalf("issue analysis must define initial observation")
	}
}

func TestParseTemplates_RequiresKey(t *testing.T) {
	_, err := ParseTemplates([]byte("- order: 1\n  process_name:\n    en: Foo\n"))
	if err == nil {
		t.Fatalf("expected error for template without key")
	}
}
