package builder

import (
	"context"
	"testing"

	"github.com/goliatone/go-quoteform/pkg/model"
	pkgopenapi "github.com/goliatone/go-quoteform/pkg/openapi"
)

const leadDocument = `{
  "openapi": "3.0.0",
  "info": {"title": "Leads", "version": "1.0.0"},
  "paths": {
    "/api/lead": {
      "post": {
        "operationId": "createLead",
        "summary": "Pedido de Simulação",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["nome", "nif"],
                "properties": {
                  "nome": {
                    "type": "string",
                    "title": "Nome completo",
                    "x-quoteform-rule": "min-words",
                    "x-quoteform-rule-param": 2,
                    "x-quoteform-free-text": true
                  },
                  "nif": {
                    "type": "string",
                    "title": "NIF",
                    "x-quoteform-rule": "nif",
                    "x-quoteform-normalize": "digits",
                    "x-quoteform-message": "NIF inválido."
                  },
                  "email": {
                    "type": "string",
                    "format": "email",
                    "title": "Email"
                  },
                  "matricula": {
                    "type": "string",
                    "title": "Matrícula",
                    "x-quoteform-rule": "plate-pt",
                    "x-quoteform-category": "auto",
                    "x-quoteform-normalize": "plate"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "created"}
        }
      }
    }
  }
}`

func buildDefinition(t *testing.T, operationID string) model.Definition {
	t.Helper()
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("lead.json"), []byte(leadDocument))
	b := New(pkgopenapi.NewBuilderOptions())
	def, err := b.Definition(context.Background(), doc, operationID)
	if err != nil {
		t.Fatalf("build definition: %v", err)
	}
	return def
}

func TestDefinitionFromOperation(t *testing.T) {
	def := buildDefinition(t, "createLead")

	if def.Key != "createLead" {
		t.Fatalf("definition key = %q", def.Key)
	}
	if def.Title != "Pedido de Simulação" {
		t.Fatalf("definition title = %q", def.Title)
	}

	registry, err := model.NewRegistry(def)
	if err != nil {
		t.Fatalf("generated definition does not validate: %v", err)
	}

	nome, ok := registry.Field("nome")
	if !ok {
		t.Fatalf("nome field missing")
	}
	if nome.Rule != model.RuleMinWords || nome.RuleParam != 2 || !nome.Required || !nome.FreeText {
		t.Fatalf("nome = %+v", nome)
	}

	nif, _ := registry.Field("nif")
	if nif.Rule != model.RuleNIF || nif.Normalize != model.NormalizeDigits || nif.Message != "NIF inválido." {
		t.Fatalf("nif = %+v", nif)
	}

	email, _ := registry.Field("email")
	if email.Rule != model.RuleEmail || email.InputType != "email" || email.Required {
		t.Fatalf("email = %+v", email)
	}

	matricula, _ := registry.Field("matricula")
	if matricula.Category != model.Category("auto") || matricula.Normalize != model.NormalizePlate {
		t.Fatalf("matricula = %+v", matricula)
	}
}

func TestDefinitionSynthesizesCategories(t *testing.T) {
	def := buildDefinition(t, "createLead")

	if len(def.Categories) != 1 {
		t.Fatalf("category count = %d, want 1", len(def.Categories))
	}
	if def.Categories[0].Key != "auto" || def.Categories[0].Label != "Auto" {
		t.Fatalf("categories = %+v", def.Categories)
	}
	if def.DefaultCategory != "auto" {
		t.Fatalf("default category = %q", def.DefaultCategory)
	}
}

func TestDefinitionUnknownOperation(t *testing.T) {
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("lead.json"), []byte(leadDocument))
	b := New(pkgopenapi.NewBuilderOptions())
	if _, err := b.Definition(context.Background(), doc, "missingOperation"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}

func TestDefinitionRequiresRequestBody(t *testing.T) {
	const noBody = `{
  "openapi": "3.0.0",
  "info": {"title": "Leads", "version": "1.0.0"},
  "paths": {
    "/ping": {
      "get": {
        "operationId": "ping",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("ping.json"), []byte(noBody))
	b := New(pkgopenapi.NewBuilderOptions())
	if _, err := b.Definition(context.Background(), doc, "ping"); err == nil {
		t.Fatalf("expected error for operation without request body")
	}
}
