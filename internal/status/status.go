// Package status checks that the application can start: the application root file and
// the per-environment configuration file must be readable, and the data model must be
// reachable.
package status

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"docvault/internal/config"
	"docvault/internal/logging"
)

const (
	DefaultAppRootFile = "approot.env"
	DefaultConfigFile  = "config.yaml"
	DefaultEnvironment = "production"

	StatusRunning = "RUNNING"
	StatusError   = "ERROR"
)

// ErrFileNotReadable matches every FileNotReadableError.
var ErrFileNotReadable = errors.New("file is not readable")

// FileNotReadableError reports a startup file that is missing, not a regular file or unreadable.
type FileNotReadableError struct {
	Name string
	Path string
	Err  error
}

func (e *FileNotReadableError) Error() string {
	return e.Name + " is not readable"
}

func (e *FileNotReadableError) Is(target error) bool {
	return target == ErrFileNotReadable
}

func (e *FileNotReadableError) Unwrap() error {
	return e.Err
}

// ModelStarter initializes the data model. With modelOnly set it must not migrate
// nor start serving.
type ModelStarter interface {
	Startup(ctx context.Context, cfg *config.AppConfig, modelOnly bool) error
}

// AppRoot holds the directories declared by the application root file.
type AppRoot struct {
	Dir         string
	ConfDir     string
	Environment string
}

// Checker performs the startup checks.
type Checker struct {
	BaseDir     string
	AppRootFile string
	ConfigFile  string
	Starter     ModelStarter
}

// NewChecker returns a Checker using the default file names under baseDir.
func NewChecker(baseDir string, starter ModelStarter) *Checker {
	return &Checker{
		BaseDir:     baseDir,
		AppRootFile: DefaultAppRootFile,
		ConfigFile:  DefaultConfigFile,
		Starter:     starter,
	}
}

func (c *Checker) appRootFile() string {
	if c.AppRootFile == "" {
		return DefaultAppRootFile
	}
	return c.AppRootFile
}

func (c *Checker) configFile() string {
	if c.ConfigFile == "" {
		return DefaultConfigFile
	}
	return c.ConfigFile
}

// checkReadable fails unless path is a regular file that can be opened for reading.
func checkReadable(name, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return &FileNotReadableError{Name: name, Path: path, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return &FileNotReadableError{Name: name, Path: path, Err: fmt.Errorf("%s is not a regular file", path)}
	}
	f, err := os.Open(path)
	if err != nil {
		return &FileNotReadableError{Name: name, Path: path, Err: err}
	}
	return f.Close()
}

// LocateAppRoot checks the application root file and resolves the directories it declares
// through APPROOT, APPCONF and APP_ENV. Relative paths are resolved against BaseDir.
func (c *Checker) LocateAppRoot() (*AppRoot, error) {
	name := c.appRootFile()
	path := filepath.Join(c.BaseDir, name)
	if err := checkReadable(name, path); err != nil {
		return nil, err
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, &FileNotReadableError{Name: name, Path: path, Err: err}
	}

	root := &AppRoot{
		Dir:         c.resolve(vars["APPROOT"], c.BaseDir),
		Environment: vars["APP_ENV"],
	}
	root.ConfDir = c.resolve(vars["APPCONF"], filepath.Join(root.Dir, "conf"))
	if root.Environment == "" {
		root.Environment = DefaultEnvironment
	}
	return root, nil
}

func (c *Checker) resolve(p, fallback string) string {
	if p == "" {
		return fallback
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// CheckConfigFile locates the application root and checks the configuration file of its
// environment. It returns the path of that file.
func (c *Checker) CheckConfigFile() (string, error) {
	root, err := c.LocateAppRoot()
	if err != nil {
		return "", err
	}

	name := c.configFile()
	path := filepath.Join(root.ConfDir, root.Environment, name)
	if err := checkReadable(name, path); err != nil {
		return "", err
	}
	return path, nil
}

// Startup checks the startup files and initializes the data model only. A nil cfg is
// loaded from the checked configuration file.
func (c *Checker) Startup(ctx context.Context, cfg *config.AppConfig) error {
	path, err := c.CheckConfigFile()
	if err != nil {
		return err
	}

	if cfg == nil {
		cfg, err = config.LoadFile(path)
		if err != nil {
			return err
		}
	}
	if c.Starter == nil {
		return errors.New("no model starter configured")
	}

	logging.From(ctx).Debugw("starting data model", "config", path)
	return c.Starter.Startup(ctx, cfg, true)
}

// Result is the status report of the application.
type Result struct {
	Status  string `json:"status" yaml:"status"`
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// StartupFailedMessage is reported for every failure other than an unreadable startup file.
const StartupFailedMessage = "Application could not be started"

// Report runs Startup and describes its outcome. Only unreadable startup files are named
// in the message; other causes are logged.
func (c *Checker) Report(ctx context.Context, cfg *config.AppConfig) Result {
	if err := c.Startup(ctx, cfg); err != nil {
		if errors.Is(err, ErrFileNotReadable) {
			return Result{Status: StatusError, Code: 500, Message: err.Error()}
		}
		logging.From(ctx).Errorw("application startup check failed", "error", err)
		return Result{Status: StatusError, Code: 500, Message: StartupFailedMessage}
	}
	return Result{Status: StatusRunning, Code: 0, Message: "Application is running"}
}
