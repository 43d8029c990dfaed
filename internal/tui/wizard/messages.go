package wizard

import (
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/plan"
	"github.com/mark3labs/trainer/internal/service"
)

// SectionChangedMsg carries a full replacement for one form section.
type SectionChangedMsg struct {
	Section form.Section
}

// OpenImagePickerMsg asks the wizard to open the image file browser.
type OpenImagePickerMsg struct{}

// OpenCameraMsg asks the wizard to open the camera capture modal.
type OpenCameraMsg struct{}

// ImageSelectedMsg is sent when an image file was chosen and read.
type ImageSelectedMsg struct {
	Image service.Image
}

// PhotoCapturedMsg is sent when the camera produced a photo.
type PhotoCapturedMsg struct {
	Image service.Image
}

// ModalClosedMsg is sent when the picker or capture modal is dismissed
// without producing an image.
type ModalClosedMsg struct{}

// ExtractionDoneMsg carries the outcome of an InBody extraction.
type ExtractionDoneMsg struct {
	Result *form.ExtractionResult
	Err    error

	attempt int
}

// PlanGeneratedMsg carries the outcome of a plan submission.
type PlanGeneratedMsg struct {
	Result *plan.Result
	Err    error
}

// PlanExportedMsg reports where the markdown export was written.
type PlanExportedMsg struct {
	Path string
	Err  error
}

// StartOverMsg asks the wizard to reset to an empty form.
type StartOverMsg struct{}

// EditorFinishedMsg carries text edited in $EDITOR back to a field.
type EditorFinishedMsg struct {
	Field   int
	Content string
	Err     error
}
