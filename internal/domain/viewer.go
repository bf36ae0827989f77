package domain

import (
	"fmt"
	"strings"
)

// DecodeArgs turns every `\-` into `-`. A backslash that is not followed by a
// dash is kept as-is.
func DecodeArgs(raw []string) []string {
	if raw == nil {
		return nil
	}

	decoded := make([]string, 0, len(raw))
	for _, token := range raw {
		decoded = append(decoded, strings.ReplaceAll(token, `\-`, "-"))
	}

	return decoded
}

type ViewerSpec struct {
	Command string
	Args    []string
}

func NewViewerSpec(command string, rawArgs []string) (ViewerSpec, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		if len(rawArgs) > 0 {
			return ViewerSpec{}, fmt.Errorf("%w: viewer args given without a viewer command", ErrInvalidArgument)
		}
		return ViewerSpec{}, nil
	}

	return ViewerSpec{Command: command, Args: DecodeArgs(rawArgs)}, nil
}

func (v ViewerSpec) Configured() bool {
	return v.Command != ""
}

// ArgsFor returns the configured args followed by the image path.
func (v ViewerSpec) ArgsFor(imagePath string) []string {
	args := make([]string, 0, len(v.Args)+1)
	args = append(args, v.Args...)
	return append(args, imagePath)
}
