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

// under reports whether path is root or lies below it.
func under(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+"/")
}

var surfaces = []string{
	"unitconv/internal/appcore", "unitconv/internal/app", "unitconv/internal/batchapp",
	"unitconv/internal/cli", "unitconv/internal/batchcli",
	"unitconv/internal/tui", "unitconv/internal/mcpserver",
	"unitconv/cmd",
}

func with(extra ...string) []string { return append(append([]string(nil), surfaces...), extra...) }

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"unitconv/pkg/api":           {"unitconv/internal", "unitconv-core"},
		"unitconv/internal/config":   with("unitconv/internal/clibase", "unitconv/internal/logging"),
		"unitconv/internal/logging":  with("unitconv/internal/config", "unitconv/internal/clibase"),
		"unitconv/internal/reqfile":  with("unitconv/internal/pipeline", "unitconv/internal/writers", "unitconv/internal/output"),
		"unitconv/internal/pipeline": with("unitconv/internal/writers", "unitconv/internal/cmdutil"),
		"unitconv/internal/writers":  with("unitconv/internal/pipeline", "unitconv/internal/cmdutil"),
		"unitconv/internal/output":   with("unitconv/internal/pipeline", "unitconv/internal/writers"),
		"unitconv/internal/pretty":   with("unitconv/internal/pipeline", "unitconv/internal/writers"),
		"unitconv/internal/streamenc": with(
			"unitconv/internal/pipeline", "unitconv/internal/writers", "unitconv/internal/output",
		),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "unitconv/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !under(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "unitconv") {
					continue
				}
				for _, ban := range forbidden {
					if under(dep, ban) {
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
