package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stringenum-generator/internal/gen"
)

var (
	watchOpts     genOptions
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [packages]",
	Short: "Regenerate codecs when sources change",
	Long: `Run gen, then run it again whenever a Go file of the loaded packages
or the declaration file changes. Generated files are ignored. Stops on
SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runWatch(ctx, newPipeline(cmd, args, watchOpts), watchDebounce)
	},
}

func init() {
	watchOpts.bind(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "quiet period before regenerating")
	rootCmd.AddCommand(watchCmd)
}

// runWatch regenerates on every relevant change until ctx is done.
// Failed runs are logged and do not stop watching.
func runWatch(ctx context.Context, p *pipeline, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	var watched []string

	rerun := func() {
		res, err := p.generate()
		if err != nil {
			p.log.Error("generation failed", zap.Error(err))
		}

		for _, dir := range watchDirs(res) {
			if slices.Contains(watched, dir) {
				continue
			}

			// Watch the directory (more reliable for editors that do atomic saves)
			if err := watcher.Add(dir); err != nil {
				p.log.Warn("cannot watch directory", zap.String("dir", dir), zap.Error(err))
				continue
			}

			watched = append(watched, dir)
			p.log.Debug("watching", zap.String("dir", dir))
		}
	}

	rerun()

	if len(watched) == 0 {
		return fmt.Errorf("nothing to watch")
	}

	p.log.Info("watching for changes", zap.Int("dirs", len(watched)))

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if relevant(event) {
				p.log.Debug("change", zap.String("file", event.Name), zap.Stringer("op", event.Op))
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			p.log.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			rerun()
		}
	}
}

// relevant reports whether event can change the generated output.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	name := filepath.Base(event.Name)

	switch {
	case strings.HasSuffix(name, gen.FileSuffix), strings.HasSuffix(name, gen.UnformattedSuffix):
		return false
	case strings.HasSuffix(name, "_test.go"):
		return false
	case strings.HasSuffix(name, ".go"), strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return true
	default:
		return false
	}
}

// watchDirs lists the package directories of res and the directory of its
// declaration file.
func watchDirs(res *resolution) []string {
	if res == nil || res.graph == nil {
		return nil
	}

	var dirs []string

	for _, path := range res.graph.Order {
		if dir := res.graph.Packages[path].Dir; dir != "" && !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	if res.configPath != "" {
		if dir, err := filepath.Abs(filepath.Dir(res.configPath)); err == nil && !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}
