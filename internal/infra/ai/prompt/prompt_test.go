package prompt

import (
	"strings"
	"testing"

	domain "github.com/meddoc/relay/internal/domain/documents"
)

func TestPrescriptionPrompt(t *testing.T) {
	p := Builder{}.For(domain.CategoryPrescription)

	for _, want := range []string{"medications", "dosage", "frequency", "instructions", "only the JSON"} {
		if !strings.Contains(p, want) {
			t.Errorf("prescription prompt missing %q", want)
		}
	}
}

func TestLabRequisitionPrompt(t *testing.T) {
	p := Builder{}.For(domain.CategoryLabRequisition)

	// schema sections
	for _, want := range []string{
		"biochemistry", "hematology", "immunology", "microbiology",
		"viral_hepatitis", "psa", "vitamin_d", "patient", "insurance",
	} {
		if !strings.Contains(p, `"`+want+`"`) {
			t.Errorf("lab requisition prompt missing section %q", want)
		}
	}

	// rendering rules
	for _, want := range []string{`"YES"`, "YYYYMMDD", "empty string"} {
		if !strings.Contains(p, want) {
			t.Errorf("lab requisition prompt missing rule %q", want)
		}
	}
}
