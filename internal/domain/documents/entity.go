package documents

// Category enum
type Category string

const (
	CategoryPrescription   Category = "prescription"
	CategoryLabRequisition Category = "lab-requisition"
)

// Folder returns the content-store folder a category's uploads live under.
func (c Category) Folder() string {
	switch c {
	case CategoryPrescription:
		return "prescriptions"
	case CategoryLabRequisition:
		return "lab-requisitions"
	}
	return ""
}

func (c Category) Valid() bool {
	return c == CategoryPrescription || c == CategoryLabRequisition
}

// Status enum for analysis outcomes
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
)

// AnalysisResult is the tagged outcome of an analyze call. Status is the
// discriminator: on success Description holds the parsed JSON object, on
// warning it holds the raw model text and Message says why.
type AnalysisResult struct {
	Status      Status `json:"status"`
	Description any    `json:"description"`
	Message     string `json:"message,omitempty"`
}

// Upload is the payload handed to a ContentStore. Filename only matters for
// its extension: .pdf triggers first-page conversion before storage.
type Upload struct {
	Filename string
	Data     []byte
	Folder   string
}
