package services

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/datatypes"

	"github.com/bilacert/bilacert-api/internal/domain"
)

// Destination names the table a submission is written to.
type Destination string

const (
	DestinationSubmissions Destination = "form_submissions"
	DestinationContacts    Destination = "contacts"
)

// Policy pairs a destination with the fields a payload must carry for it.
type Policy struct {
	Destination Destination
	Required    []string
}

var (
	// SubmissionPolicy governs the generic intake form.
	SubmissionPolicy = Policy{
		Destination: DestinationSubmissions,
		Required:    []string{"formType", "fullName", "email"},
	}
	// ContactPolicy governs the legacy contact form.
	ContactPolicy = Policy{
		Destination: DestinationContacts,
		Required:    []string{"fullName", "email", "message"},
	}
)

// Field limits, matching the column sizes in the domain models.
const (
	maxNameRunes    = 255
	maxPhoneRunes   = 64
	maxMessageRunes = 5000
	maxDetailsBytes = 16 << 10
)

// Submission is a validated, normalized intake payload. Optional values the
// caller left out are nil, never "".
type Submission struct {
	Destination Destination

	FormType    domain.FormType
	ServiceID   *string
	ServiceName *string
	FullName    string
	Email       string
	Phone       *string
	Company     *string
	Industry    *string
	Details     datatypes.JSON

	// Contact form only.
	Service *string
	Message *string
}

// Validate checks raw against p and returns the normalized submission or a
// *ValidationError. Keys outside the policy's field set are ignored.
func Validate(p Policy, raw map[string]any) (*Submission, error) {
	v := &validation{raw: raw}
	for _, f := range p.Required {
		v.required(f)
	}

	out := &Submission{
		Destination: p.Destination,
		FullName:    v.text("fullName", maxNameRunes),
		Email:       v.text("email", maxNameRunes),
		Phone:       v.optional("phone", maxPhoneRunes),
	}

	switch p.Destination {
	case DestinationContacts:
		out.Service = v.optional("service", maxNameRunes)
		out.Message = v.optional("message", maxMessageRunes)
	default:
		if ft := v.text("formType", 64); ft != "" {
			out.FormType = domain.FormType(ft)
			if !out.FormType.Valid() {
				v.invalid("formType")
			}
		}
		out.ServiceID = v.optional("serviceId", 64)
		out.ServiceName = v.optional("serviceName", maxNameRunes)
		out.Company = v.optional("company", maxNameRunes)
		out.Industry = v.optional("industry", maxNameRunes)
		out.Details = v.details("details")
	}

	if len(v.missing) > 0 || len(v.bad) > 0 {
		return nil, &ValidationError{Missing: v.missing, Invalid: v.bad}
	}
	return out, nil
}

type validation struct {
	raw     map[string]any
	missing []string
	bad     []string
	seen    map[string]bool
}

func (v *validation) invalid(field string) {
	if v.seen == nil {
		v.seen = map[string]bool{}
	}
	if !v.seen[field] {
		v.seen[field] = true
		v.bad = append(v.bad, field)
	}
}

// required records field as missing when it is absent, null or blank, and
// as invalid when it is not a string.
func (v *validation) required(field string) {
	val, ok := v.raw[field]
	if !ok || val == nil {
		v.missing = append(v.missing, field)
		return
	}
	s, isStr := val.(string)
	if !isStr {
		v.invalid(field)
		return
	}
	if strings.TrimSpace(s) == "" {
		v.missing = append(v.missing, field)
	}
}

// text returns the cleaned value of field or "" when absent.
func (v *validation) text(field string, maxRunes int) string {
	p := v.optional(field, maxRunes)
	if p == nil {
		return ""
	}
	return *p
}

// optional returns nil for absent, null and blank values.
func (v *validation) optional(field string, maxRunes int) *string {
	val, ok := v.raw[field]
	if !ok || val == nil {
		return nil
	}
	s, isStr := val.(string)
	if !isStr {
		v.invalid(field)
		return nil
	}
	s = clean(s)
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) > maxRunes {
		v.invalid(field)
		return nil
	}
	return &s
}

// details accepts a JSON object. null, "" and {} normalise to nil.
func (v *validation) details(field string) datatypes.JSON {
	val, ok := v.raw[field]
	if !ok || val == nil {
		return nil
	}
	switch d := val.(type) {
	case string:
		if strings.TrimSpace(d) == "" {
			return nil
		}
	case map[string]any:
		if len(d) == 0 {
			return nil
		}
		b, err := json.Marshal(cleanTree(d))
		if err != nil || len(b) > maxDetailsBytes {
			break
		}
		return datatypes.JSON(b)
	}
	v.invalid(field)
	return nil
}

// clean trims surrounding space and converts to NFC so visually equal input
// compares equal in storage.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func cleanTree(val any) any {
	switch t := val.(type) {
	case string:
		return clean(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = cleanTree(x)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = cleanTree(x)
		}
		return out
	default:
		return val
	}
}
