package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
)

const sampleDocument = `{"openapi": "3.0.3"}`

func TestLoad_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := New(pkgopenapi.NewLoaderOptions())
	doc, err := loader.Load(context.Background(), pkgopenapi.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sampleDocument {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("expected location %q, got %q", path, doc.Location())
	}
}

func TestLoad_FSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/login.yaml": &fstest.MapFile{Data: []byte(sampleDocument)},
	}

	loader := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithFileSystem(fsys)))
	doc, err := loader.Load(context.Background(), pkgopenapi.SourceFromFS("schemas/login.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sampleDocument {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoad_FSSourceWithoutFilesystem(t *testing.T) {
	loader := New(pkgopenapi.NewLoaderOptions())
	if _, err := loader.Load(context.Background(), pkgopenapi.SourceFromFS("missing.yaml")); err == nil {
		t.Fatal("expected error without filesystem")
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	loader := New(pkgopenapi.NewLoaderOptions())
	_, err := loader.Load(context.Background(), pkgopenapi.SourceFromURL("http://127.0.0.1:0/schema.yaml"))
	if err == nil {
		t.Fatal("expected http disabled error")
	}
	if !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestLoad_HTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleDocument))
	}))
	defer server.Close()

	loader := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPClient(server.Client())))
	doc, err := loader.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL+"/schema.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sampleDocument {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoad_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	loader := New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPFallback(true)))
	if _, err := loader.Load(context.Background(), pkgopenapi.SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestLoad_NilSource(t *testing.T) {
	loader := New(pkgopenapi.NewLoaderOptions())
	if _, err := loader.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
