package manager

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
)

// serverBinarySuffix is the naming convention for stub server binaries:
// discordsrv, gmailsrv, slacksrv, and so on.
const serverBinarySuffix = "srv"

// DiscoverServers scans a directory for stub server binaries and returns
// server configurations derived from the file names. The integration name is
// the binary name with the "srv" suffix stripped: "discordsrv" -> "discord".
func DiscoverServers(directory string, logger logging.Logger) ([]ServerConfig, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, errors.NewDiscoveryError("failed to read server directory", err).WithContext("directory", directory)
	}

	var servers []ServerConfig
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		base := entry.Name()
		if runtime.GOOS == "windows" {
			base = strings.TrimSuffix(base, ".exe")
		}

		name := strings.TrimSuffix(base, serverBinarySuffix)
		if name == base || name == "" {
			continue
		}

		if err := ValidateServerName(name); err != nil {
			logger.Warnf("Skipping discovered binary with invalid name, file: %s, error: %v", entry.Name(), err)
			continue
		}

		servers = append(servers, ServerConfig{
			Name:       name,
			Executable: filepath.Join(directory, entry.Name()),
		})
		logger.Debugf("Discovered server binary, name: %s, executable: %s", name, entry.Name())
	}

	logger.Infof("Server discovery complete, directory: %s, found: %d", directory, len(servers))
	return servers, nil
}
