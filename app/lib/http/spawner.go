package http

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Spawner runs a dynamic program with its standard output bound to stdout
// and blocks until it exits.
type Spawner interface {
	Spawn(path string, queryArgs string, stdout io.Writer) error
}

type filer interface {
	File() (*os.File, error)
}

// ExecSpawner runs programs with os/exec. The child sees Env (the server's
// own environment when nil) plus QUERY_STRING.
type ExecSpawner struct {
	Env []string
}

func (e ExecSpawner) Spawn(path string, queryArgs string, stdout io.Writer) error {
	env := e.Env
	if env == nil {
		env = os.Environ()
	}

	cmd := exec.Command(path)
	cmd.Env = append(append([]string{}, env...), QueryStringEnv+"="+queryArgs)
	cmd.Stderr = os.Stderr
	cmd.Stdout = stdout

	if f, ok := stdout.(filer); ok {
		file, err := f.File()
		if err == nil {
			defer file.Close()
			cmd.Stdout = file
		}
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", path, err)
	}

	return nil
}
