// Package openapi derives bindable records from OpenAPI component schemas so
// forms can be rendered for API payloads without a database. Documents are
// read from disk, an fs.FS or HTTP and parsed with kin-openapi.
package openapi
