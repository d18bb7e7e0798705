// Package settings edits a host CLI tool's JSON settings file so the stub
// servers appear in its mcpServers section. Two shapes are found in the
// wild: a map keyed by server name, and a list of objects carrying a name
// field. The file's other keys are preserved untouched and the original is
// kept as a .bak backup before the first write.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
)

const serversKey = "mcpServers"

// ServerEntry is the command definition written into the settings file.
type ServerEntry struct {
	Name        string            `json:"name,omitempty"`
	Command     string            `json:"command"`
	Args        []string          `json:"args,omitempty"`
	Environment map[string]string `json:"env,omitempty"`
}

// Integrate merges the given servers into the settings file at path,
// creating the file if it does not exist. Existing entries with the same
// name are replaced; everything else in the file is preserved.
func Integrate(path string, servers []ServerEntry, logger logging.Logger) error {
	if len(servers) == 0 {
		return errors.NewValidationError("no servers to integrate", nil)
	}

	document, existed, err := loadDocument(path)
	if err != nil {
		return err
	}

	switch section := document[serversKey].(type) {
	case nil:
		document[serversKey] = buildMap(map[string]interface{}{}, servers)
	case map[string]interface{}:
		document[serversKey] = buildMap(section, servers)
	case []interface{}:
		document[serversKey] = buildList(section, servers)
	default:
		return errors.NewValidationError("mcpServers has an unsupported shape", nil).WithContext("path", path)
	}

	if existed {
		if err := backup(path); err != nil {
			return err
		}
	}
	if err := writeDocument(path, document); err != nil {
		return err
	}

	logger.Infof("settings updated, path: %s, servers: %d", path, len(servers))
	return nil
}

// Remove deletes the named servers from the settings file. Names not
// present are ignored. Returns the names actually removed, sorted.
func Remove(path string, names []string, logger logging.Logger) ([]string, error) {
	document, existed, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, errors.NewNotFoundError("settings file does not exist", nil).WithContext("path", path)
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	var removed []string

	switch section := document[serversKey].(type) {
	case map[string]interface{}:
		for name := range section {
			if wanted[name] {
				delete(section, name)
				removed = append(removed, name)
			}
		}
	case []interface{}:
		kept := make([]interface{}, 0, len(section))
		for _, item := range section {
			name := entryName(item)
			if name != "" && wanted[name] {
				removed = append(removed, name)
				continue
			}
			kept = append(kept, item)
		}
		document[serversKey] = kept
	case nil:
		return nil, nil
	default:
		return nil, errors.NewValidationError("mcpServers has an unsupported shape", nil).WithContext("path", path)
	}

	if len(removed) == 0 {
		return nil, nil
	}

	if err := backup(path); err != nil {
		return nil, err
	}
	if err := writeDocument(path, document); err != nil {
		return nil, err
	}

	sort.Strings(removed)
	logger.Infof("settings entries removed, path: %s, names: %v", path, removed)
	return removed, nil
}

// ListIntegrated returns the server names currently present in the file,
// sorted. A missing file yields an empty list.
func ListIntegrated(path string) ([]string, error) {
	document, existed, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, nil
	}

	var names []string
	switch section := document[serversKey].(type) {
	case map[string]interface{}:
		for name := range section {
			names = append(names, name)
		}
	case []interface{}:
		for _, item := range section {
			if name := entryName(item); name != "" {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func buildMap(section map[string]interface{}, servers []ServerEntry) map[string]interface{} {
	for _, server := range servers {
		entry := map[string]interface{}{"command": server.Command}
		if len(server.Args) > 0 {
			entry["args"] = server.Args
		}
		if len(server.Environment) > 0 {
			entry["env"] = server.Environment
		}
		section[server.Name] = entry
	}
	return section
}

func buildList(section []interface{}, servers []ServerEntry) []interface{} {
	replacing := make(map[string]bool, len(servers))
	for _, server := range servers {
		replacing[server.Name] = true
	}

	kept := make([]interface{}, 0, len(section)+len(servers))
	for _, item := range section {
		if name := entryName(item); name != "" && replacing[name] {
			continue
		}
		kept = append(kept, item)
	}
	for _, server := range servers {
		entry := map[string]interface{}{
			"name":    server.Name,
			"command": server.Command,
		}
		if len(server.Args) > 0 {
			entry["args"] = server.Args
		}
		if len(server.Environment) > 0 {
			entry["env"] = server.Environment
		}
		kept = append(kept, entry)
	}
	return kept
}

func entryName(item interface{}) string {
	object, ok := item.(map[string]interface{})
	if !ok {
		return ""
	}
	name, _ := object["name"].(string)
	return name
}

func loadDocument(path string) (map[string]interface{}, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]interface{}{}, false, nil
	}
	if err != nil {
		return nil, false, errors.NewIOError("failed to read settings file", err).WithContext("path", path)
	}

	var document map[string]interface{}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, false, errors.NewValidationError("settings file is not valid JSON", err).WithContext("path", path)
	}
	return document, true, nil
}

func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewIOError("failed to read settings file for backup", err).WithContext("path", path)
	}
	backupPath := path + ".bak"
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return errors.NewIOError("failed to write settings backup", err).WithContext("path", backupPath)
	}
	return nil
}

func writeDocument(path string, document map[string]interface{}) error {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return errors.NewInternalError("failed to encode settings", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIOError("failed to create settings directory", err).WithContext("directory", dir)
	}

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(".%s-*", filepath.Base(path)))
	if err != nil {
		return errors.NewIOError("failed to create temporary settings file", err).WithContext("directory", dir)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIOError("failed to write temporary settings file", err).WithContext("path", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewIOError("failed to close temporary settings file", err).WithContext("path", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewIOError("failed to replace settings file", err).WithContext("path", path)
	}
	return nil
}
