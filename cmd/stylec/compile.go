package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"stylec/config"
	"stylec/scope"
	"stylec/sheet"
	"stylec/state"
	"stylec/transform"
)

func runCompile(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no style document specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	source := cmd.Args().Get(0)
	destDir := cmd.Args().Get(1)
	if destDir == "" {
		destDir = "."
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("unable to read style document '%s': %w", source, err)
	}

	doc, err := sheet.Load(data)
	if err != nil {
		return fmt.Errorf("unable to parse style document '%s': %w", source, err)
	}

	prefix := env.Cfg.Style.Prefix
	if p := cmd.String("prefix"); p != "" {
		prefix = p
	}

	tr := transform.Default()
	if !env.Cfg.Style.Normalize {
		tr = transform.Nop
	}

	s := scope.New(
		scope.WithPrefix(prefix),
		scope.WithTransformer(tr),
		scope.WithLogger(env.Log),
	)

	res, err := doc.Build(s)
	if err != nil {
		return fmt.Errorf("unable to compile style document '%s': %w", source, err)
	}
	if res.CSS == "" {
		env.Log.Warn("Style document produced no rules", zap.String("source", source))
		return nil
	}

	name := doc.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	base := config.CleanFileName(slug.Make(name))
	dest := filepath.Join(destDir, base+".css")

	overwrite := cmd.Bool("overwrite")
	if err := writeOutput(dest, []byte(res.CSS), overwrite); err != nil {
		return err
	}
	env.Log.Info("Stylesheet written", zap.String("file", dest),
		zap.Int("classes", len(res.Classes)), zap.Int("animations", len(res.Animations)))

	if cmd.Bool("map") || env.Cfg.Style.MapNames {
		mapDest := filepath.Join(destDir, base+".names.yaml")
		data, err := yaml.Marshal(struct {
			Classes    map[string]string `yaml:"classes,omitempty"`
			Animations map[string]string `yaml:"animations,omitempty"`
		}{res.Classes, res.Animations})
		if err != nil {
			return fmt.Errorf("unable to marshal name map: %w", err)
		}
		if err := writeOutput(mapDest, data, overwrite); err != nil {
			return err
		}
		env.Log.Info("Name map written", zap.String("file", mapDest))
	}
	return nil
}

// writeOutput writes data to dest, refusing to clobber existing files
// unless overwrite is requested.
func writeOutput(dest string, data []byte, overwrite bool) (err error) {
	if !overwrite {
		if _, er := os.Stat(dest); er == nil {
			return fmt.Errorf("destination '%s' already exists, use --overwrite", dest)
		}
	}
	if er := os.MkdirAll(filepath.Dir(dest), 0755); er != nil {
		return fmt.Errorf("unable to create destination directory: %w", er)
	}

	f, er := os.Create(dest)
	if er != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", dest, er)
	}
	defer func() {
		if er := f.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close destination file '%s': %w", dest, er))
		}
	}()

	if _, er := f.Write(data); er != nil {
		return fmt.Errorf("unable to write destination file '%s': %w", dest, er)
	}
	return nil
}
