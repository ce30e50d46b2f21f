package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/fsutil"
	"github.com/specialistvlad/decisiongrid/internal/schema"
)

var requestExtensions = []string{".json", ".yaml", ".yml"}

type requestFile struct {
	path    string
	request *schema.Request
	err     error
}

// loadRequests reads every request under path. A file that cannot be
// decoded is kept with its error so the others still run.
func loadRequests(ctx context.Context, path string) ([]requestFile, error) {
	logger := ctxlog.FromContext(ctx)
	paths, err := fsutil.FindFilesByExtension(path, requestExtensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find requests in %s: %w", path, err)
	}
	logger.Debug("Discovered request files.", "count", len(paths))

	out := make([]requestFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read request %s: %w", p, err)
		}
		req, err := schema.Decode(p, data)
		out = append(out, requestFile{path: p, request: req, err: err})
	}
	return out, nil
}
