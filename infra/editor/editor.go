// Package editor drafts comments in the user's own text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	fallbackEditor = "vi"
	headerEnd      = "-->"
)

// headerFormat is written above the draft. Everything up to headerEnd is
// dropped when the draft is read back.
const headerFormat = `<!--
Commenting on %q.
Save and quit to post. Leave the draft empty to discard it.
-->

`

// EnvEditor drafts comments in $VISUAL or $EDITOR, falling back to vi.
// The returned command is meant for tea.ExecProcess, which gives the editor
// the terminal for as long as it runs.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

// Cmd stores draft in a fresh temp file under a header naming videoTitle and
// returns the command that opens it, plus the file's path for ReadContent.
// The editor variable may carry flags, e.g. "code --wait".
func (e *EnvEditor) Cmd(videoTitle, draft string) (*exec.Cmd, string, error) {
	argv := editorArgs()

	f, err := os.CreateTemp("", "terminalreels-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("create draft: %w", err)
	}
	path := f.Name()
	defer f.Close()

	if _, err := fmt.Fprintf(f, headerFormat+"%s", videoTitle, draft); err != nil {
		os.Remove(path)
		return nil, "", fmt.Errorf("write draft: %w", err)
	}

	argv = append(argv, path)
	return exec.Command(argv[0], argv[1:]...), path, nil
}

// ReadContent returns the comment body of the draft at path and deletes the
// file. An empty result means the user discarded the draft.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read draft: %w", err)
	}
	body := string(data)
	if _, after, found := strings.Cut(body, headerEnd); found {
		body = after
	}
	return strings.TrimSpace(body), nil
}

func editorArgs() []string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if argv := strings.Fields(os.Getenv(name)); len(argv) > 0 {
			return argv
		}
	}
	return []string{fallbackEditor}
}
