package agent

import (
	"context"
	"errors"
	"testing"
)

func TestDecide_ParsesValidDecision(t *testing.T) {
	llm := &fakeLLM{responses: map[string]string{
		promptDraftEmail: `{"send_email": true, "subject": "Sushi picks", "body": "* Shiro's Sushi"}`,
	}}
	d := NewEmailDrafter(llm, testLogger(), testTelemetry())

	decision := d.Decide(context.Background(), "sushi", "summary", "raw")
	if !decision.SendEmail || decision.Subject != "Sushi picks" || decision.Body != "* Shiro's Sushi" {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestDecide_UnwrapsFencedJSON(t *testing.T) {
	llm := &fakeLLM{responses: map[string]string{
		promptDraftEmail: "```json\n{\"send_email\": true, \"subject\": \"s\", \"body\": \"b\"}\n```",
	}}
	d := NewEmailDrafter(llm, testLogger(), testTelemetry())

	if decision := d.Decide(context.Background(), "g", "s", "a"); !decision.SendEmail {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestDecide_NormalizesInvalidDecisions(t *testing.T) {
	cases := []struct {
		name     string
		response string
		err      error
	}{
		{"not json", "I think yes, send it", nil},
		{"missing subject", `{"send_email": true, "body": "b"}`, nil},
		{"missing body", `{"send_email": true, "subject": "s"}`, nil},
		{"empty strings", `{"send_email": true, "subject": "", "body": ""}`, nil},
		{"transport failure", "", errors.New("timeout")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &fakeLLM{responses: map[string]string{promptDraftEmail: tc.response}, err: tc.err}
			d := NewEmailDrafter(llm, testLogger(), testTelemetry())
			if decision := d.Decide(context.Background(), "g", "s", "a"); decision.SendEmail {
				t.Fatalf("decision %+v should have been normalized to send_email=false", decision)
			}
		})
	}
}

func TestDecide_ExplicitFalse(t *testing.T) {
	llm := &fakeLLM{responses: map[string]string{promptDraftEmail: `{"send_email": false}`}}
	d := NewEmailDrafter(llm, testLogger(), testTelemetry())

	if decision := d.Decide(context.Background(), "g", "s", "a"); decision.SendEmail {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}
