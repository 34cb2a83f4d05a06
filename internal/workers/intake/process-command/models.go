// internal/workers/intake/process-command/models.go
package processcommand

import (
	"command-engine/internal/brains"
	"command-engine/internal/models"
)

type Input struct {
	RawText  string                 `json:"rawText"`
	Channel  string                 `json:"channel"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type Output struct {
	Command   *models.Command `json:"command"`
	Result    *brains.Result  `json:"result,omitempty"`
	Duplicate bool            `json:"duplicate"`
}
