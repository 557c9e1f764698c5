// Package loginform provides a small, extraction-friendly login/registration
// page component: a GET handler that serves the rendered HTML form and a POST
// handler that validates the submission and answers with a greeting.
//
// The form is generated from the OpenAPI document embedded under
// schema/login.yaml and decorated with the presentation overlay under
// uischema/login.yaml. Both handlers negotiate between HTML and JSON
// responses based on the request Accept header.
package loginform
