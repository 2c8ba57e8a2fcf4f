// Package snapshot loads a service-config document from disk and compiles
// it with the standard methodopts factory. A Snapshot is what the CLI, the
// inspection server and the reloader hand around: one successfully compiled
// document, immutable once built.
package snapshot

import (
	"fmt"
	"os"

	"github.com/routekit/svcconfig/pkg/methodopts"
	"github.com/routekit/svcconfig/pkg/svcconfig"
)

// Snapshot is one compiled service config.
type Snapshot struct {
	// Policy is the top-level load-balancing policy; HasPolicy reports
	// whether the document set one.
	Policy    string
	HasPolicy bool

	Table *svcconfig.Table[*methodopts.Options]
}

// Load reads, parses and compiles the document at path. Rejections come
// back wrapped with the file path; nothing partial is ever returned.
func Load(path string) (*Snapshot, error) {
	// #nosec G304 -- the config path is operator-supplied by design.
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read service config %q: %w", path, err)
	}
	return Compile(text, path)
}

// Compile builds a Snapshot from raw document text. name is used only in
// error messages.
func Compile(text []byte, name string) (*Snapshot, error) {
	cfg, err := svcconfig.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("service config %q: %w", name, err)
	}
	policy, hasPolicy, err := cfg.LoadBalancingPolicy()
	if err != nil {
		return nil, fmt.Errorf("service config %q: %w", name, err)
	}
	table, err := svcconfig.Compile(cfg, methodopts.Factory, methodopts.Behavior())
	if err != nil {
		return nil, fmt.Errorf("service config %q: %w", name, err)
	}
	return &Snapshot{Policy: policy, HasPolicy: hasPolicy, Table: table}, nil
}
