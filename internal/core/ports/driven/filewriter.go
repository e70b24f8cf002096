package driven

import "context"

// FileWriter persists rendered output. The core produces strings and
// bytes; writing them anywhere is infrastructure's job.
type FileWriter interface {
	// Write stores payload at path, creating parent directories as needed.
	Write(ctx context.Context, path string, payload []byte) error
}
