// Package testsupport provides shared fixtures for contract tests across the
// form pipeline packages.
package testsupport

import (
	"testing"

	pkgmodel "github.com/goliatone/go-formpage/pkg/model"
	pkgopenapi "github.com/goliatone/go-formpage/pkg/openapi"
)

// RegistrationDocumentYAML is a minimal OpenAPI document describing a
// registration form post, shared by parser, builder, and orchestrator tests.
const RegistrationDocumentYAML = `openapi: 3.0.3
info:
  title: Registration Service
  version: 1.0.0
paths:
  /login:
    post:
      operationId: login
      summary: Login / Registration
      requestBody:
        required: true
        content:
          application/x-www-form-urlencoded:
            schema:
              type: object
              required:
                - firstname
                - lastname
                - age
              properties:
                firstname:
                  type: string
                  minLength: 1
                lastname:
                  type: string
                  minLength: 1
                age:
                  type: integer
                  minimum: 0
                  maximum: 150
      responses:
        "200":
          description: Greeting for the submitted user.
`

// RegistrationDocument wraps the shared YAML fixture in a Document.
func RegistrationDocument(t *testing.T) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFS("fixtures/registration.yaml"), []byte(RegistrationDocumentYAML))
	if err != nil {
		t.Fatalf("wrap fixture document: %v", err)
	}
	return doc
}

// RegistrationForm returns the form model the pipeline produces for the
// fixture document, usable without running the parser.
func RegistrationForm() pkgmodel.FormModel {
	return pkgmodel.FormModel{
		OperationID: "login",
		Endpoint:    "/login",
		Method:      "POST",
		Title:       "Login / Registration",
		Summary:     "Login / Registration",
		Fields: []pkgmodel.Field{
			{
				Name:     "firstname",
				Type:     pkgmodel.FieldTypeString,
				Required: true,
				Label:    "Firstname",
				Validations: []pkgmodel.ValidationRule{
					{Kind: pkgmodel.ValidationRuleMinLength, Params: map[string]string{"value": "1"}},
				},
			},
			{
				Name:     "lastname",
				Type:     pkgmodel.FieldTypeString,
				Required: true,
				Label:    "Lastname",
				Validations: []pkgmodel.ValidationRule{
					{Kind: pkgmodel.ValidationRuleMinLength, Params: map[string]string{"value": "1"}},
				},
			},
			{
				Name:     "age",
				Type:     pkgmodel.FieldTypeInteger,
				Required: true,
				Label:    "Age",
				Validations: []pkgmodel.ValidationRule{
					{Kind: pkgmodel.ValidationRuleMin, Params: map[string]string{"value": "0"}},
					{Kind: pkgmodel.ValidationRuleMax, Params: map[string]string{"value": "150"}},
				},
			},
		},
	}
}
