// Command formpage renders an OpenAPI operation into a standalone HTML form
// page. With -fill it instead prompts for each field on the terminal and
// posts the answers to the given endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/goliatone/go-formpage"
	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
	"github.com/goliatone/go-formpage/pkg/orchestrator"
	"github.com/goliatone/go-formpage/pkg/render"
	"github.com/goliatone/go-formpage/pkg/renderers/tui"
	"github.com/goliatone/go-formpage/pkg/renderers/vanilla"
	"github.com/goliatone/go-formpage/pkg/uischema"
)

func main() {
	var (
		source     = flag.String("source", "", "OpenAPI document path or URL")
		opID       = flag.String("operation", "login", "operation ID to render")
		renderer   = flag.String("renderer", "vanilla", "renderer to use")
		output     = flag.String("output", "", "output file (stdout if empty)")
		stylesheet = flag.String("stylesheet", "", "external stylesheet href (inline styles if empty)")
		overlay    = flag.String("ui", "", "UI overlay YAML file")
		fill       = flag.Bool("fill", false, "prompt for values on the terminal and POST them")
		endpoint   = flag.String("endpoint", "", "submission endpoint for -fill (defaults to the operation path)")
	)
	flag.Parse()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	ctx := context.Background()

	options := []orchestrator.Option{
		orchestrator.WithRegistry(buildRegistry(*stylesheet)),
		orchestrator.WithLoader(formpage.NewLoader(
			pkgopenapi.WithHTTPClient(http.DefaultClient),
		)),
	}
	if *overlay != "" {
		doc, err := loadOverlay(*overlay)
		if err != nil {
			log.Fatalf("ui overlay: %v", err)
		}
		options = append(options, orchestrator.WithDecorators(doc.Decorator()))
	}

	gen := formpage.NewOrchestrator(options...)

	if *fill {
		if err := runFill(ctx, gen, src, *opID, *endpoint); err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				fmt.Fprintln(os.Stderr, "cancelled")
				os.Exit(1)
			}
			log.Fatalf("fill: %v", err)
		}
		return
	}

	outputHTML, err := gen.Generate(ctx, orchestrator.Request{
		Source:      src,
		OperationID: *opID,
		Renderer:    *renderer,
	})
	if err != nil {
		log.Fatalf("generate form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

func buildRegistry(stylesheet string) *render.Registry {
	rendererOptions := []vanilla.Option{vanilla.WithDefaultStyles()}
	if stylesheet != "" {
		rendererOptions = []vanilla.Option{vanilla.WithStylesheet(stylesheet)}
	}
	htmlRenderer, err := vanilla.New(rendererOptions...)
	if err != nil {
		log.Fatalf("configure renderer: %v", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(htmlRenderer)
	registry.MustRegister(tui.New())
	return registry
}

func loadOverlay(path string) (uischema.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return uischema.Document{}, err
	}
	return uischema.Parse(raw)
}

// runFill prompts for each form field and posts the encoded answers.
func runFill(ctx context.Context, gen *orchestrator.Orchestrator, src pkgopenapi.Source, opID, endpoint string) error {
	form, err := gen.BuildModel(ctx, orchestrator.Request{
		Source:      src,
		OperationID: opID,
	})
	if err != nil {
		return err
	}

	prompter := tui.New()
	values, err := prompter.Fill(ctx, form, render.RenderOptions{})
	if err != nil {
		return err
	}

	target := strings.TrimSpace(endpoint)
	if target == "" {
		target = form.Endpoint
	}
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		return fmt.Errorf("endpoint %q is not an absolute URL", target)
	}

	resp, err := http.Post(target, prompter.ContentType(), strings.NewReader(values.Encode()))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n", resp.Status, strings.TrimSpace(string(body)))
	if resp.StatusCode >= 400 {
		return fmt.Errorf("endpoint returned %s", resp.Status)
	}
	return nil
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
