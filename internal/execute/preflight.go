package execute

import (
	"fmt"
	"os/exec"
)

// Program returns the command name when it is a fixed string, or "" when
// the first argument contains a placeholder.
func (t *Template) Program() string {
	segs := t.args[0]
	if len(segs) != 1 || segs[0].slot >= 0 {
		return ""
	}
	return segs[0].literal
}

// CheckProgram verifies that the template's program can be found before any
// record is run. Templates whose program is a placeholder are not checked.
func CheckProgram(t *Template) error {
	program := t.Program()
	if program == "" {
		return nil
	}
	if _, err := exec.LookPath(program); err != nil {
		return fmt.Errorf("command %q not found: %w", program, err)
	}
	return nil
}
