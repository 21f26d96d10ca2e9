package deps

import (
	"bufio"
	"log"
	"os"
	"regexp"
	"sort"
	"strings"
)

// importPattern matches an import statement and captures its module
// specifier, whichever quote style the source uses.
var importPattern = regexp.MustCompile(`^\s*import .* from ['"]([^'"]+)['"]`)

// moduleName reduces an import specifier to its top-level module name.
// Relative specifiers and node builtins are not external modules and are
// dropped; scoped specifiers keep only their scope segment.
func moduleName(specifier string) (string, bool) {
	if strings.HasPrefix(specifier, ".") || strings.HasPrefix(specifier, "node:") {
		return "", false
	}
	if idx := strings.Index(specifier, "/"); idx != -1 {
		return specifier[:idx], true
	}
	return specifier, true
}

// ScanFile reads one file and returns the external module names its
// import statements reference, in encounter order, undeduplicated.
func ScanFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var modules []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := importPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		if name, ok := moduleName(m[1]); ok {
			modules = append(modules, name)
		}
	}
	return modules, scanner.Err()
}

// Scan merges the module names imported across all files into one
// sorted, deduplicated list. The scan is best-effort: files that cannot
// be read are noted on stderr and skipped. progress, when non-nil, is
// called once per file before it is scanned.
func Scan(paths []string, progress func(path string)) []string {
	seen := map[string]struct{}{}
	for _, path := range paths {
		if progress != nil {
			progress(path)
		}
		modules, err := ScanFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		for _, m := range modules {
			seen[m] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
