package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-gov/cg-dashboard/pkg/cfapi"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
)

// CmdConfig holds the parsed command line.
type CmdConfig struct {
	SubCmd     string
	Help       bool
	ConfigFile string
	AppGUID    string
	Plain      bool
	Args       []string
}

// FileConfig is the subset of the dashboard config file the CLI reads.
type FileConfig struct {
	API     cfapi.Config   `json:"api"`
	Logging *logger.Config `json:"logging,omitempty"`
}

// Validate fills API defaults.
func (c *FileConfig) Validate() error {
	return c.API.Validate()
}

// logStyles defines styles for logging messages
type logStyles struct {
	info, error lipgloss.Style
}
