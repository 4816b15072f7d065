package prompt

import domain "github.com/meddoc/relay/internal/domain/documents"

// Builder maps a document category to its fixed instruction text. Pure and
// stateless; the schema lives inside the prompt and the backend is trusted to
// follow it (no local validation).
type Builder struct{}

func (Builder) For(category domain.Category) string {
	if category == domain.CategoryLabRequisition {
		return labRequisitionPrompt
	}
	return prescriptionPrompt
}

const prescriptionPrompt = "For this prescription document image, provide a JSON with fields: medications (name, dosage, frequency), instructions (summary of the prescription). Provide only the JSON and only these fields."

// labRequisitionPrompt digitizes a fixed-layout requisition form. Rules the
// model must follow: empty fields render as "", checkbox fields render "YES"
// when marked and "" otherwise, dates normalize to an 8-digit YYYYMMDD string.
const labRequisitionPrompt = `Digitize this lab requisition form image into a single JSON object with exactly the schema below. Provide only the JSON.

Rules:
- Fields that are empty on the form must be the empty string "".
- Checkbox fields must be "YES" when the box is marked, otherwise "".
- Dates must be an 8-digit string in year-month-day order (YYYYMMDD).

Schema (example with empty values):
{
  "patient": {
    "last_name": "",
    "first_name": "",
    "date_of_birth": "",
    "sex": "",
    "health_number": "",
    "address": "",
    "city": "",
    "province": "",
    "postal_code": "",
    "telephone": ""
  },
  "insurance": {
    "provincial_plan": "",
    "third_party": "",
    "wsib": "",
    "uninsured": ""
  },
  "ordering_provider": {
    "name": "",
    "clinician_number": "",
    "cc_provider": ""
  },
  "biochemistry": {
    "glucose_random": "",
    "glucose_fasting": "",
    "hba1c": "",
    "creatinine_egfr": "",
    "uric_acid": "",
    "alt": "",
    "alkaline_phosphatase": "",
    "bilirubin": "",
    "albumin": "",
    "lipid_assessment": "",
    "tsh": "",
    "urinalysis": "",
    "albumin_creatinine_ratio_urine": ""
  },
  "hematology": {
    "cbc": "",
    "prothrombin_time_inr": ""
  },
  "immunology": {
    "pregnancy_test_urine": "",
    "rubella": "",
    "prenatal_abo_rhd": "",
    "prenatal_antibody_screen": ""
  },
  "microbiology": {
    "cervical": "",
    "vaginal": "",
    "vaginal_rectal_group_b_strep": "",
    "chlamydia_source": "",
    "gc_source": "",
    "sputum": "",
    "throat": "",
    "wound_source": "",
    "urine_culture": "",
    "stool_culture": "",
    "stool_ova_parasites": "",
    "other_swabs_pus": ""
  },
  "viral_hepatitis": {
    "acute_hepatitis": "",
    "chronic_hepatitis": "",
    "immune_status_previous_exposure": {
      "hepatitis_a": "",
      "hepatitis_b": "",
      "hepatitis_c": ""
    }
  },
  "psa": {
    "total_psa": "",
    "free_psa": ""
  },
  "vitamin_d": {
    "25_hydroxy": ""
  },
  "other_tests": "",
  "specimen_collection": {
    "date": "",
    "time": ""
  }
}`
