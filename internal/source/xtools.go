package source

import (
	"bytes"
	"context"

	"github.com/saltnpepper97/vx/internal/errors"
	"github.com/saltnpepper97/vx/internal/logging"
)

// NewTemplate scaffolds srcpkgs/<name> with xnew from xtools.
func (r *Runner) NewTemplate(ctx context.Context, name string) error {
	dir, err := r.Voidpkgs()
	if err != nil {
		return err
	}

	logging.Exec(dir, "xnew", name)
	code, err := r.Exec.ExecuteInteractive(ctx, dir, "xnew", name)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError,
			"failed to run xnew (is xtools installed?)", err)
	}
	if code != 0 {
		return errors.ToolExit("xnew", code)
	}
	return nil
}

// GenSumOptions are the flags forwarded to xgensum.
type GenSumOptions struct {
	Force   bool
	Clean   bool
	Arch    string
	Hostdir string
}

// GenSum regenerates a template's checksums with xgensum -i and reports
// whether the template file actually changed.
func (r *Runner) GenSum(ctx context.Context, opts GenSumOptions, name string) (bool, error) {
	dir, err := r.Voidpkgs()
	if err != nil {
		return false, err
	}

	path, err := TemplatePath(dir, name)
	if err != nil {
		return false, errors.Wrap(errors.ExitGeneralError, "bad package name", err)
	}
	before, err := r.FS.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(errors.ExitGeneralError, "no template for "+name, err)
	}

	args := []string{"-i"}
	if opts.Force {
		args = append(args, "-f")
	}
	if opts.Clean {
		args = append(args, "-c")
	}
	if opts.Arch != "" {
		args = append(args, "-a", opts.Arch)
	}
	if opts.Hostdir != "" {
		args = append(args, "-H", opts.Hostdir)
	}
	args = append(args, name)

	logging.Exec(dir, "xgensum", args...)
	code, err := r.Exec.ExecuteInteractive(ctx, dir, "xgensum", args...)
	if err != nil {
		return false, errors.Wrap(errors.ExitGeneralError,
			"failed to run xgensum (is xtools installed?)", err)
	}
	if code != 0 {
		return false, errors.ToolExit("xgensum", code)
	}

	after, err := r.FS.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(errors.ExitGeneralError, "template vanished after xgensum", err)
	}
	return !bytes.Equal(before, after), nil
}
