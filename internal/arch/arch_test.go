// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// The core parsing module must stay free of app/cli concerns, and the
// shared output layer must not reach back into the tools that use it.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	apps := []string{
		"strucsum/internal/dsspapp", "strucsum/internal/pqrapp", "strucsum/internal/labelapp",
		"strucsum/internal/dsspcli", "strucsum/internal/pqrcli", "strucsum/internal/labelcli",
		"strucsum/cmd/",
	}
	bans := map[string][]string{
		"strucsum-core/":            apps,
		"strucsum/internal/summary": apps,
		"strucsum/internal/mkdssp":  apps,
		"strucsum/internal/clibase": {
			"strucsum/internal/dsspapp", "strucsum/internal/pqrapp", "strucsum/internal/labelapp",
			"strucsum/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "strucsum") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
