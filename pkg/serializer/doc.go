// Package serializer writes snapshot data in the supported output
// formats.
//
// Three formats are available:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable configuration format
//   - Table: flattened key/value rows for quick terminal reading
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//		log.Fatal(err)
//	}
package serializer

import "context"

// Serializer writes snapshot data to its destination. Implementations
// serialize to JSON, YAML, or table form.
type Serializer interface {
	Serialize(ctx context.Context, snapshot any) error
}

// Closer is an optional interface for Serializers that hold resources
// such as file handles.
type Closer interface {
	Close() error
}
