package env

import (
	"bufio"
	"os"
	"strings"
)

// Read parses the given file (e.g. ".env") into KEY=VALUE pairs. Empty lines,
// lines starting with # and lines without a key are skipped; a leading
// "export " is ignored and surrounding quotes are removed from values.
// A missing file yields an empty map and no error.
func Read(path string) (map[string]string, error) {
	vars := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	return vars, scanner.Err()
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

// Load reads path with Read and exports each pair that is not already set in
// the process environment, so real environment variables win over the file.
func Load(path string) error {
	vars, err := Read(path)
	if err != nil {
		return err
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
