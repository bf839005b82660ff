// Package api holds the OpenAPI contract of the HTTP API.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,server -package servers -o ../internal/generated/servers/servers.gen.go openapi.yaml

import _ "embed"

// Spec is the OpenAPI 3 document in YAML.
//
//go:embed openapi.yaml
var Spec []byte
