// Package promptdialog implements ports.Dialog as line prompts on a
// terminal. An empty answer or end of input cancels the dialog.
package promptdialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/user/watermark/pkg/ports"
)

// Dialog reads answers from r and writes prompts to w.
type Dialog struct {
	r *bufio.Reader
	w io.Writer
}

// New creates a Dialog. The reader is shared with the command loop so
// buffered input is not lost between prompts.
func New(r *bufio.Reader, w io.Writer) *Dialog {
	return &Dialog{r: r, w: w}
}

// OpenPath prompts for an image to open.
func (d *Dialog) OpenPath() (string, error) {
	return d.ask("Open file: ")
}

// SavePath prompts for an export destination and appends defaultExt
// when the answer has none.
func (d *Dialog) SavePath(defaultExt string) (string, error) {
	path, err := d.ask("Save as: ")
	if err != nil {
		return "", err
	}
	if filepath.Ext(path) == "" && defaultExt != "" {
		path += "." + strings.TrimPrefix(defaultExt, ".")
	}
	return path, nil
}

func (d *Dialog) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(d.w, prompt); err != nil {
		return "", err
	}
	line, err := d.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", ports.ErrUserCancelled
	}
	return answer, nil
}

var _ ports.Dialog = (*Dialog)(nil)
