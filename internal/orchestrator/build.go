package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quickapp/quickapp/internal/config"
	"github.com/quickapp/quickapp/internal/frontend"
	"github.com/quickapp/quickapp/internal/generator"
	"github.com/quickapp/quickapp/internal/logging"
	"github.com/quickapp/quickapp/internal/model"
	"github.com/quickapp/quickapp/internal/script"
	"github.com/quickapp/quickapp/internal/toolchain"
	"github.com/quickapp/quickapp/internal/validator"
)

// Builder orchestrates one build: compile the script, materialize the
// project tree, drive the external build tool, and collect the package.
type Builder struct {
	engine  *script.Engine
	gradle  *toolchain.Gradle
	log     *logging.Logger
	stdout  io.Writer
	stderr  io.Writer
	workDir string
}

// NewBuilder wires a builder against the real toolchain.
func NewBuilder(cfg *config.Config, runner toolchain.Runner, log *logging.Logger, stdout, stderr io.Writer) *Builder {
	return &Builder{
		engine:  script.New(),
		gradle:  toolchain.NewGradle(cfg.Tools.Gradle, cfg.SDK.Root, runner),
		log:     log.Named("build"),
		stdout:  stdout,
		stderr:  stderr,
		workDir: ".",
	}
}

// BuildError is the reported form of any build pipeline or tool failure.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return "QuickApp Build Error: " + e.Err.Error()
}

func (e *BuildError) Unwrap() error { return e.Err }

// Build compiles scriptPath into a package and returns the package path.
// Compilation failures stop the pipeline before any external tool runs;
// every failure is reported as a BuildError.
func (b *Builder) Build(ctx context.Context, scriptPath string) (string, error) {
	path, err := b.build(ctx, scriptPath)
	if err != nil {
		return "", &BuildError{Err: err}
	}
	return path, nil
}

func (b *Builder) build(ctx context.Context, scriptPath string) (string, error) {
	buildID := uuid.New().String()
	b.log.Info("build started",
		zap.String("build_id", buildID),
		zap.String("script", scriptPath))

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}

	decls, err := b.engine.Eval(ctx, string(src))
	if err != nil {
		return "", err
	}
	app, err := frontend.Parse(decls)
	if err != nil {
		return "", err
	}
	if err := validator.Validate(app); err != nil {
		return "", err
	}
	artifacts, identity, err := generator.Generate(app, scriptPath)
	if err != nil {
		return "", err
	}

	projectDir := filepath.Join(b.workDir, "build", identity.CleanedName)
	if err := materialize(projectDir, artifacts, identity, scriptPath); err != nil {
		return "", err
	}

	b.log.Info("invoking build tool",
		zap.String("build_id", buildID),
		zap.String("project", projectDir))
	if err := b.gradle.Assemble(ctx, projectDir, b.stdout, b.stderr); err != nil {
		return "", err
	}

	apkPath := filepath.Join(b.workDir, identity.CleanedName+"-debug"+toolchain.PackageExt)
	built := filepath.Join(projectDir, filepath.FromSlash(toolchain.OutputAPK))
	if err := copyFile(built, apkPath); err != nil {
		return "", fmt.Errorf("collecting package: %w", err)
	}

	b.log.Info("build finished",
		zap.String("build_id", buildID),
		zap.String("package", apkPath))
	return apkPath, nil
}

// materialize writes the project tree: artifacts at their fixed paths, a
// verbatim copy of the script, and the assets directory if one sits beside
// the script.
func materialize(projectDir string, artifacts model.BuildArtifact, identity model.PackageIdentity, scriptPath string) error {
	pkgDir := filepath.Join("src", "main", "java", filepath.FromSlash(strings.ReplaceAll(identity.PackageName, ".", "/")))

	if err := writeFile(filepath.Join(projectDir, "build.gradle"), artifacts[model.ArtifactBuildDescriptor]); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(projectDir, "src", "main", "AndroidManifest.xml"), artifacts[model.ArtifactManifest]); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(projectDir, pkgDir, "MainActivity.kt"), artifacts[model.ArtifactActivitySource]); err != nil {
		return err
	}

	if err := copyFile(scriptPath, filepath.Join(projectDir, filepath.Base(scriptPath))); err != nil {
		return fmt.Errorf("copying script: %w", err)
	}

	assets := filepath.Join(filepath.Dir(scriptPath), "assets")
	if info, err := os.Stat(assets); err == nil && info.IsDir() {
		if err := copyDir(assets, filepath.Join(projectDir, "src", "main", "assets")); err != nil {
			return fmt.Errorf("copying assets: %w", err)
		}
	}
	return nil
}
