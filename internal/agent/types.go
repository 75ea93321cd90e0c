package agent

// EmailDecision is the structured outcome of the email-drafting stage.
// Subject and Body must both be non-empty when SendEmail is true; any
// decision violating that is normalized to SendEmail=false at the parse
// boundary and never flows downstream.
type EmailDecision struct {
	SendEmail bool   `json:"send_email"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body,omitempty"`
}

// Valid reports whether the decision satisfies the subject/body invariant.
func (d EmailDecision) Valid() bool {
	if !d.SendEmail {
		return true
	}
	return d.Subject != "" && d.Body != ""
}

// ResearchDoc is one successfully fetched source.
type ResearchDoc struct {
	SourceURL string
	Text      string
}

// noRecipient is the sentinel for "no email address found in the goal".
const noRecipient = "none"

// researchFailureMessage is the fixed turn-terminal output when every
// selected URL failed to fetch.
const researchFailureMessage = "I tried to browse several websites but was blocked or couldn't find any information. Please try again."
