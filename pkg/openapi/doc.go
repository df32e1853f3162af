// Package openapi builds forms from the request body of an OpenAPI 3
// operation.
//
// Every property of the body schema becomes one input created by a
// widgets.Factory, so the same document drives terminal, prompt and web
// forms. Placement is controlled with schema extensions:
//
//	x-formview-widget  force a widget kind (text, secret, integer, number)
//	x-formview-row     properties sharing a row number share a row
//	x-formview-weight  relative width inside the row
//	x-formview-order   sort key; unordered properties follow by name
//
// The resulting form resolves into Values, a map keyed by property name.
package openapi
