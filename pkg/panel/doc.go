// Package panel implements the CRUD-table controller behind the admin and
// client-registry screens: a snapshot store fed by the REST API, a renderer
// producing permission-gated table markup, a create/edit form controller
// and the per-row action dispatcher.
//
// Every component is parameterized by a Schema describing one entity shape,
// so the profile and client screens share a single implementation. Screens
// differ only in their Schema and the permission policy injected through
// the Gate.
package panel
