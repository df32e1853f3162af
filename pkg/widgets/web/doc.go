// Package web provides form widgets for HTML forms. Widgets describe
// themselves as a Control, which the html renderer turns into markup. A
// submitted request is fed back with Decode and resolution failures are
// attached to their fields with Annotate.
package web
