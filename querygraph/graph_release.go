//go:build !loomquery_debug

package querygraph

// validateAcyclic is a no-op in production builds; see graph_debug.go.
func validateAcyclic(*Graph) {}
