package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-monitor/internal/domain/model"

	"github.com/google/uuid"
)

// ProbeGateway checks filesystem usability for health monitoring.
type ProbeGateway interface {
	// Probe verifies a full write, read and delete cycle in the probe directory
	Probe(ctx context.Context) (model.ProbeFinding, error)
}

// FileProbeGateway probes a directory by writing a unique file, reading it
// back and deleting it. A full disk, revoked permissions or a wedged volume
// all surface as probe failures.
type FileProbeGateway struct {
	dir string
}

var _ ProbeGateway = (*FileProbeGateway)(nil)

// NewFileProbeGateway creates a new filesystem probe gateway over the given
// directory. An empty directory falls back to the system temp directory.
func NewFileProbeGateway(dir string) *FileProbeGateway {
	if dir == "" {
		dir = os.TempDir()
	}
	return &FileProbeGateway{dir: dir}
}

func (gateway *FileProbeGateway) Probe(ctx context.Context) (model.ProbeFinding, error) {
	path := filepath.Join(gateway.dir, "monitor-probe-"+uuid.New().String())
	content := []byte(strconv.FormatInt(time.Now().UnixNano(), 10))

	if err := ctx.Err(); err != nil {
		return model.ProbeFinding{}, err
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return model.ProbeFinding{}, fmt.Errorf("write failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		os.Remove(path)
		return model.ProbeFinding{}, err
	}
	read, err := os.ReadFile(path)
	if err != nil {
		os.Remove(path)
		return model.ProbeFinding{}, fmt.Errorf("read failed: %w", err)
	}
	if string(read) != string(content) {
		os.Remove(path)
		return model.ProbeFinding{}, fmt.Errorf("read back %q, expected %q", read, content)
	}

	if err := os.Remove(path); err != nil {
		return model.ProbeFinding{}, fmt.Errorf("delete failed: %w", err)
	}

	return model.ProbeFinding{
		Status: model.StatusHealthy,
		Details: map[string]string{
			"directory": gateway.dir,
		},
	}, nil
}
