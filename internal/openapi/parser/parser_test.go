package parser

import (
	"context"
	"testing"

	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
	"github.com/goliatone/go-formpage/pkg/testsupport"
)

func TestOperations_ExtractsFormOperation(t *testing.T) {
	parser := New(pkgopenapi.NewParserOptions())
	doc := testsupport.RegistrationDocument(t)

	operations, err := parser.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	op, ok := operations["login"]
	if !ok {
		t.Fatalf("expected login operation, got %v", operations)
	}
	if op.Method != "POST" {
		t.Fatalf("expected POST, got %q", op.Method)
	}
	if op.Path != "/login" {
		t.Fatalf("expected /login, got %q", op.Path)
	}
	if op.Summary != "Login / Registration" {
		t.Fatalf("unexpected summary %q", op.Summary)
	}

	body := op.RequestBody
	if body.Type != "object" {
		t.Fatalf("expected object request body, got %q", body.Type)
	}
	if len(body.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(body.Properties))
	}
	if got := body.Required; len(got) != 3 || got[0] != "firstname" || got[1] != "lastname" || got[2] != "age" {
		t.Fatalf("unexpected required order %v", got)
	}

	age := body.Properties["age"]
	if age.Type != "integer" {
		t.Fatalf("expected integer age, got %q", age.Type)
	}
	if age.Minimum == nil || *age.Minimum != 0 {
		t.Fatalf("expected minimum 0, got %v", age.Minimum)
	}
	if age.Maximum == nil || *age.Maximum != 150 {
		t.Fatalf("expected maximum 150, got %v", age.Maximum)
	}

	first := body.Properties["firstname"]
	if first.MinLength == nil || *first.MinLength != 1 {
		t.Fatalf("expected minLength 1, got %v", first.MinLength)
	}
}

func TestOperations_ExtractsVendorExtensions(t *testing.T) {
	raw := []byte(`openapi: 3.0.3
info:
  title: Profile
  version: 1.0.0
paths:
  /profile:
    post:
      operationId: profile
      x-formpage-audience: members
      requestBody:
        required: true
        content:
          application/x-www-form-urlencoded:
            schema:
              type: object
              required: [bio]
              properties:
                bio:
                  type: string
                  x-formpage-widget: textarea
      responses:
        "200":
          description: saved
`)
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("profile.yaml"), raw)
	parser := New(pkgopenapi.NewParserOptions())

	operations, err := parser.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	op, ok := operations["profile"]
	if !ok {
		t.Fatalf("expected profile operation, got %v", operations)
	}
	if got := op.Extensions["x-formpage-audience"]; got != "members" {
		t.Fatalf("expected operation extension, got %#v", op.Extensions)
	}

	bio := op.RequestBody.Properties["bio"]
	if got := bio.Extensions["x-formpage-widget"]; got != "textarea" {
		t.Fatalf("expected schema extension, got %#v", bio.Extensions)
	}
}

func TestOperations_FallbackOperationID(t *testing.T) {
	raw := []byte(`openapi: 3.0.3
info:
  title: Ping
  version: 1.0.0
paths:
  /ping:
    get:
      responses:
        "200":
          description: pong
`)
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("ping.yaml"), raw)
	parser := New(pkgopenapi.NewParserOptions())

	operations, err := parser.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if _, ok := operations["get:/ping"]; !ok {
		t.Fatalf("expected fallback id get:/ping, got %v", operations)
	}
}

func TestOperations_EmptyPathsRejected(t *testing.T) {
	raw := []byte(`openapi: 3.0.3
info:
  title: Empty
  version: 1.0.0
paths: {}
`)
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("empty.yaml"), raw)

	parser := New(pkgopenapi.NewParserOptions())
	if _, err := parser.Operations(context.Background(), doc); err == nil {
		t.Fatal("expected error for document without paths")
	}

	permissive := New(pkgopenapi.NewParserOptions(pkgopenapi.WithPartialDocuments(true)))
	operations, err := permissive.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("partial documents: %v", err)
	}
	if len(operations) != 0 {
		t.Fatalf("expected no operations, got %v", operations)
	}
}

func TestOperations_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parser := New(pkgopenapi.NewParserOptions())
	if _, err := parser.Operations(ctx, testsupport.RegistrationDocument(t)); err == nil {
		t.Fatal("expected context error")
	}
}
