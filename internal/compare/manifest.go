package compare

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/fsutil"
	"github.com/yuic2000/MBot-ORB-SLAM3-docker/internal/version"
)

// Manifest records what a run read and wrote.
type Manifest struct {
	RunID     string        `json:"run_id"`
	CreatedAt time.Time     `json:"created_at"`
	Version   string        `json:"version"`
	View      string        `json:"view"`
	Output    string        `json:"output"`
	Inputs    []InputResult `json:"inputs"`
}

// Manifest builds the manifest for r, stamped with createdAt.
func (r *Result) Manifest(createdAt time.Time) Manifest {
	return Manifest{
		RunID:     r.RunID,
		CreatedAt: createdAt.UTC(),
		Version:   version.String(),
		View:      r.View.String(),
		Output:    r.OutputPath,
		Inputs:    r.Inputs,
	}
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(fsys fsutil.FileSystem, path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("write manifest: %w", err)
	}
	return f.Close()
}
