package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/cli/safeexec"
)

// FileOpener hands a file to an external editor. Open returns once the editor
// has been started; it never waits for the editor to exit.
type FileOpener interface {
	Open(path string, line int) error
}

// Config holds argv templates. "{file}" and "{line}" are substituted in every
// argument.
type Config struct {
	File     []string `yaml:"file"`
	FileLine []string `yaml:"file_line"`
}

func DefaultConfig() Config {
	return Config{
		File:     []string{"code", "{file}"},
		FileLine: []string{"code", "-g", "{file}:{line}"},
	}
}

func (c Config) Validate() error {
	if len(c.File) == 0 || c.File[0] == "" {
		return errors.New("editor.file must name a command")
	}
	if len(c.FileLine) == 0 || c.FileLine[0] == "" {
		return errors.New("editor.file_line must name a command")
	}
	return nil
}

// Argv expands the template for path and line. A line below 1 selects the
// file-only template.
func (c Config) Argv(path string, line int) []string {
	tmpl := c.File
	if line > 0 {
		tmpl = c.FileLine
	}
	r := strings.NewReplacer("{file}", path, "{line}", strconv.Itoa(line))
	argv := make([]string, len(tmpl))
	for i, a := range tmpl {
		argv[i] = r.Replace(a)
	}
	return argv
}

// CommandOpener starts the configured editor command directly, without a
// shell.
type CommandOpener struct {
	cfg Config
	log *slog.Logger

	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
}

func NewCommandOpener(cfg Config, log *slog.Logger) *CommandOpener {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CommandOpener{
		cfg:      cfg,
		log:      log,
		lookPath: safeexec.LookPath,
		start:    startDetached,
	}
}

func (o *CommandOpener) Open(path string, line int) error {
	argv := o.cfg.Argv(path, line)
	if len(argv) == 0 {
		return errors.New("no editor command configured")
	}
	bin, err := o.lookPath(argv[0])
	if err != nil {
		o.log.Error("editor not found", "command", argv[0], "err", err)
		return fmt.Errorf("editor %q not found: %w", argv[0], err)
	}

	o.log.Info("opening file", "file", path, "line", line, "argv", argv)
	if err := o.start(exec.Command(bin, argv[1:]...)); err != nil {
		o.log.Error("editor failed to start", "argv", argv, "err", err)
		return fmt.Errorf("start editor: %w", err)
	}
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// ParseTarget splits "path:line" as typed on the command line. A missing or
// non-numeric suffix leaves the whole string as the path.
func ParseTarget(s string) (string, int) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return s, 0
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil || n < 1 {
		return s, 0
	}
	return s[:i], n
}
