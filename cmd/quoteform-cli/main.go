package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	quoteform "github.com/goliatone/go-quoteform"
	"github.com/goliatone/go-quoteform/pkg/engine"
	"github.com/goliatone/go-quoteform/pkg/formdef"
	"github.com/goliatone/go-quoteform/pkg/model"
	pkgopenapi "github.com/goliatone/go-quoteform/pkg/openapi"
	"github.com/goliatone/go-quoteform/pkg/renderers/tui"
)

func main() {
	form := flag.String("form", formdef.QuoteKey, "built-in form key (quote, contact) or path to a definition file")
	mode := flag.String("mode", "html", "output mode: html renders markup, tui runs an interactive session")
	category := flag.String("category", "", "active category key (quote form: auto, moto, ...)")
	endpoint := flag.String("endpoint", "", "submission endpoint URL (defaults to QUOTEFORM_ENDPOINT)")
	output := flag.String("output", "", "output file for html mode (stdout if empty)")
	openapiSource := flag.String("openapi", "", "OpenAPI document path or URL to derive the form from")
	operation := flag.String("operation", "", "operation ID when -openapi is set")
	flag.Parse()

	// Missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	target := *endpoint
	if target == "" {
		target = os.Getenv("QUOTEFORM_ENDPOINT")
	}

	ctx := context.Background()

	eng, err := buildEngine(ctx, *form, *openapiSource, *operation, target)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	if *category != "" {
		eng.SetActiveCategory(model.Category(*category))
	}

	switch *mode {
	case "html":
		runHTML(ctx, eng, *output)
	case "tui":
		runTUI(ctx, eng)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func buildEngine(ctx context.Context, form, openapiSource, operation, endpoint string) (*engine.Engine, error) {
	var options []engine.Option
	if endpoint != "" {
		options = append(options, engine.WithEndpoint(endpoint))
	}

	if openapiSource != "" {
		if operation == "" {
			return nil, errors.New("-operation is required with -openapi")
		}
		return quoteform.NewEngineFromOpenAPI(ctx, parseSource(openapiSource), operation, options...)
	}

	switch form {
	case formdef.QuoteKey:
		return quoteform.NewQuoteEngine(options...)
	case formdef.ContactKey:
		return quoteform.NewContactEngine(options...)
	}

	data, err := os.ReadFile(form)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", form, err)
	}
	def, err := formdef.Parse(data)
	if err != nil {
		return nil, err
	}
	return quoteform.NewEngine(def, options...)
}

func runHTML(ctx context.Context, eng *engine.Engine, output string) {
	markup, err := quoteform.RenderHTML(ctx, eng)
	if err != nil {
		log.Fatalf("render form: %v", err)
	}

	if output != "" {
		if err := os.WriteFile(output, markup, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", output)
		return
	}
	fmt.Println(string(markup))
}

func runTUI(ctx context.Context, eng *engine.Engine) {
	runner, err := tui.NewRunner(eng)
	if err != nil {
		log.Fatalf("build tui runner: %v", err)
	}
	if err := runner.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Println("Sessão cancelada.")
			return
		}
		log.Fatalf("tui session: %v", err)
	}
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
