package formpage

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
	"github.com/goliatone/go-formpage/pkg/orchestrator"
	"github.com/goliatone/go-formpage/pkg/testsupport"
)

func TestGenerateHTMLFromDocument(t *testing.T) {
	doc := testsupport.RegistrationDocument(t)

	output, err := GenerateHTMLFromDocument(context.Background(), doc, "login", "vanilla")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	page := string(output)

	if got := strings.Count(page, "<form"); got != 1 {
		t.Fatalf("expected exactly one form, got %d", got)
	}
	if !strings.Contains(page, `method="post"`) || !strings.Contains(page, `action="/login"`) {
		t.Fatal("expected form posting to /login")
	}
	for _, control := range []string{`name="firstname"`, `name="lastname"`, `name="age"`} {
		if !strings.Contains(page, control) {
			t.Fatalf("expected control %q", control)
		}
	}
}

func TestGenerateHTML_LoadsThroughLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/login.yaml": &fstest.MapFile{Data: []byte(testsupport.RegistrationDocumentYAML)},
	}

	output, err := GenerateHTML(context.Background(),
		pkgopenapi.SourceFromFS("schemas/login.yaml"),
		"login",
		"vanilla",
		orchestrator.WithLoader(NewLoader(pkgopenapi.WithFileSystem(fsys))),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `action="/login"`) {
		t.Fatal("expected rendered form")
	}
}

func TestNewParser_ExtractsOperations(t *testing.T) {
	parser := NewParser()

	operations, err := parser.Operations(context.Background(), testsupport.RegistrationDocument(t))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	if _, ok := operations["login"]; !ok {
		t.Fatalf("expected login operation, got %v", operations)
	}
}
