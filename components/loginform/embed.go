package loginform

import "embed"

//go:embed schema/login.yaml
var schemaFS embed.FS

//go:embed uischema/login.yaml
var overlayFS embed.FS

const (
	schemaName  = "schema/login.yaml"
	overlayName = "uischema/login.yaml"
)
