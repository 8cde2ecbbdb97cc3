package domain

// FormType tags which public form produced a submission.
type FormType string

const (
	FormTypeServiceInquiry     FormType = "service-inquiry"
	FormTypeContact            FormType = "contact"
	FormTypeClassECSECNS       FormType = "class-ecs-ecns"
	FormTypeICASATypeApprovals FormType = "icasa-type-approvals"
	FormTypeLicenseExemptions  FormType = "license-exemptions"
	FormTypeNRCSLOA            FormType = "nrcs-loa"
	FormTypeRadioDealer        FormType = "radio-dealer"
	FormTypeSkiBoatVHF         FormType = "ski-boat-vhf"
)

// FormTypes lists every accepted form type in display order.
var FormTypes = []FormType{
	FormTypeServiceInquiry,
	FormTypeContact,
	FormTypeClassECSECNS,
	FormTypeICASATypeApprovals,
	FormTypeLicenseExemptions,
	FormTypeNRCSLOA,
	FormTypeRadioDealer,
	FormTypeSkiBoatVHF,
}

// Valid reports whether t is one of FormTypes.
func (t FormType) Valid() bool {
	for _, ft := range FormTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// SubmissionStatus is the staff-facing processing state of a FormSubmission.
// Transitions are a convention only; nothing enforces their order.
type SubmissionStatus string

const (
	StatusPending    SubmissionStatus = "pending"
	StatusInProgress SubmissionStatus = "in-progress"
	StatusCompleted  SubmissionStatus = "completed"
	StatusRejected   SubmissionStatus = "rejected"
	StatusArchived   SubmissionStatus = "archived"
)

// Role is a staff user's role. Only RoleAdmin grants access to submissions.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is part of the canonical role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}
