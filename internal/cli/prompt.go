package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/obrakit-labs/obrakit/internal/estructura"
)

// promptProjectName asks for the project name on w and reads one line from
// r. The returned name is trimmed; an empty line is an invalid-name error so
// the bare invocation fails before touching the filesystem.
func promptProjectName(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Introduce el nombre del proyecto: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading project name: %w", err)
	}

	name := strings.TrimSpace(line)
	if err := estructura.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
